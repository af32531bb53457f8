// Package factory builds the AMQP-backed publisher and subscriber for a
// production upstream bound to a real broker, mirroring the teacher's infra/pubsub factory split between a
// PublisherProvider and a SubscriberProvider. It exists so the four
// upstream topics (§4.1) can be backed by an actual message broker instead
// of the in-process default in internal/bus.
package factory

import (
	amqp "github.com/ThreeDotsLabs/watermill-amqp/v3"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Config describes the exchange the engine's aggregation topic is bound
// to when running against a real broker.
type Config struct {
	AmqpURI  string
	Exchange string
}

// BuildPublisher constructs an AMQP-backed publisher for cfg.Exchange.
func BuildPublisher(cfg Config) (message.Publisher, error) {
	return amqp.NewPublisher(amqpConfig(cfg), nil)
}

// BuildSubscriber constructs an AMQP-backed subscriber bound to
// cfg.Exchange, one queue per upstream topic forwarded into the
// aggregation topic.
func BuildSubscriber(cfg Config) (message.Subscriber, error) {
	return amqp.NewSubscriber(amqpConfig(cfg), nil)
}

func amqpConfig(cfg Config) amqp.Config {
	c := amqp.NewDurablePubSubConfig(cfg.AmqpURI, nil)
	c.Exchange.GenerateName = func(topic string) string { return cfg.Exchange }
	return c
}
