package producer

import (
	"relay-srv/internal/relay"
	pkgKafka "relay-srv/pkg/kafka"
	"relay-srv/pkg/log"
)

// implProducer implements relay.Producer on top of the Kafka producer.
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new relay result producer
func New(l log.Logger, producer pkgKafka.IProducer) relay.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
