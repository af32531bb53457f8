// Package bus provides the pub/sub plumbing the router uses to aggregate
// the four upstream topics into one (§4.1). The upstream bus itself is out
// of scope (§1); this package only describes the interface the core
// consumes, with a concrete in-process implementation (gochannel) for
// stand-alone operation and tests, and a factory hook for a real AMQP
// upstream in production.
package bus

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Provider constructs the message.Pub/Sub pair the router and its
// forwarders bind against.
type Provider interface {
	Publisher() message.Publisher
	Subscriber() message.Subscriber
	Close() error
}

// inProcessProvider wraps a single gochannel.GoChannel, which implements
// both message.Publisher and message.Subscriber, as watermill's in-memory
// pub/sub transport. It is the default provider: sufficient to aggregate
// the four upstream topics into one locally, exactly as §4.1 describes,
// without requiring a real broker.
type inProcessProvider struct {
	pubsub *gochannel.GoChannel
}

// NewInProcess builds a Provider backed by watermill's gochannel
// implementation.
func NewInProcess(logger watermill.LoggerAdapter) Provider {
	gc := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            256,
		Persistent:                     false,
		BlockPublishUntilSubscriberAck: false,
	}, logger)
	return &inProcessProvider{pubsub: gc}
}

func (p *inProcessProvider) Publisher() message.Publisher   { return p.pubsub }
func (p *inProcessProvider) Subscriber() message.Subscriber { return p.pubsub }
func (p *inProcessProvider) Close() error                   { return p.pubsub.Close() }
