// Package router implements the aggregation topic and message-type
// dispatcher described in §4.1: it forwards the four upstream topics into
// one, then dispatches each message by its type tag to the matching
// correlator. Teardown unsubscribes and joins every forwarder and the
// dispatch handler before returning, so no handler can fire once term has
// returned (§5).
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/webitel/cel-engine/internal/bus"
	"github.com/webitel/cel-engine/internal/correlator"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// upstreamSnapshotPair is the JSON wire shape for a cache_update message:
// both the old and new snapshot, either of which may be nil.
type upstreamSnapshotPair struct {
	Old *model.ChannelSnapshot `json:"old"`
	New *model.ChannelSnapshot `json:"new"`
}

type upstreamBridgeEvent struct {
	Bridge  *model.BridgeSnapshot   `json:"bridge"`
	Channel *model.ChannelSnapshot `json:"channel"`
}

// Router owns the watermill message.Router, the upstream forwarders, and
// the dispatch handler. It is constructed once per engine instance.
type Router struct {
	wmRouter    *message.Router
	provider    bus.Provider
	correlators *correlator.Correlators
	logger      *slog.Logger

	cancel context.CancelFunc
}

// New builds a Router wired to dispatch every aggregated message to
// correlators. It does not start running until Run is called.
func New(provider bus.Provider, correlators *correlator.Correlators, logger *slog.Logger) (*Router, error) {
	if logger == nil {
		logger = slog.Default()
	}

	wmRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("router: new watermill router: %w", err)
	}

	r := &Router{
		wmRouter:    wmRouter,
		provider:    provider,
		correlators: correlators,
		logger:      logger,
	}

	r.registerForwarders()
	r.registerDispatcher()

	return r, nil
}

// registerForwarders binds each of the four upstream topics to a
// publishing handler that republishes every message, metadata
// intact, onto the aggregation topic (§4.1: "forwards every message from
// these into a single aggregation topic").
func (r *Router) registerForwarders() {
	forward := func(name, topic string) {
		r.wmRouter.AddHandler(
			name,
			topic,
			r.provider.Subscriber(),
			TopicAggregation,
			r.provider.Publisher(),
			func(msg *message.Message) ([]*message.Message, error) {
				fwd := message.NewMessage(uuid.NewString(), msg.Payload)
				fwd.Metadata = msg.Metadata
				return []*message.Message{fwd}, nil
			},
		)
	}

	forward("forward-channel-cache", TopicChannelCache)
	forward("forward-bridge", TopicBridge)
	forward("forward-parking", TopicParking)
	forward("forward-cel-internal", TopicCelInternal)
}

// registerDispatcher binds the aggregation topic to the type-tag dispatch
// handler (§4.1's "Router ... dispatches by type").
func (r *Router) registerDispatcher() {
	r.wmRouter.AddNoPublisherHandler(
		"dispatch",
		TopicAggregation,
		r.provider.Subscriber(),
		r.dispatch,
	)
}

func (r *Router) dispatch(msg *message.Message) error {
	ctx := msg.Context()
	msgType := MessageType(msg.Metadata.Get(metadataTypeKey))

	switch msgType {
	case TypeCacheUpdate:
		var pair upstreamSnapshotPair
		if err := json.Unmarshal(msg.Payload, &pair); err != nil {
			r.logger.Error("router: decode cache_update failed", "err", err)
			return nil
		}
		r.correlators.OnSnapshotUpdate(ctx, pair.Old, pair.New)

	case TypeChannelDial:
		var env model.DialEnvelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode channel_dial failed", "err", err)
			return nil
		}
		r.correlators.OnDial(ctx, &env)

	case TypeChannelEnteredBridge:
		var env upstreamBridgeEvent
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode channel_entered_bridge failed", "err", err)
			return nil
		}
		r.correlators.OnEnteredBridge(ctx, env.Bridge, env.Channel)

	case TypeChannelLeftBridge:
		var env upstreamBridgeEvent
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode channel_left_bridge failed", "err", err)
			return nil
		}
		r.correlators.OnLeftBridge(ctx, env.Bridge, env.Channel)

	case TypeParkedCall:
		var env model.ParkEnvelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode parked_call failed", "err", err)
			return nil
		}
		r.correlators.OnParkedCall(ctx, &env)

	case TypeCelGeneric:
		var env model.UserEventEnvelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode cel_generic failed", "err", err)
			return nil
		}
		r.correlators.OnUserEvent(ctx, &env)

	case TypeBlindTransfer:
		var env model.BlindTransferEnvelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode blind_transfer failed", "err", err)
			return nil
		}
		r.correlators.OnBlindTransfer(ctx, &env)

	case TypeAttendedTransfer:
		var env model.AttendedTransferEnvelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode attended_transfer failed", "err", err)
			return nil
		}
		r.correlators.OnAttendedTransfer(ctx, &env)

	case TypeCallPickup:
		var env model.PickupEnvelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode call_pickup failed", "err", err)
			return nil
		}
		r.correlators.OnPickup(ctx, &env)

	case TypeLocalOptimizationEnd:
		var env model.LocalOptimizeEnvelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			r.logger.Error("router: decode local_optimization_end failed", "err", err)
			return nil
		}
		r.correlators.OnLocalOptimize(ctx, &env)

	default:
		r.logger.Warn("router: unrecognized message type", "type", msgType)
	}

	return nil
}

// Run starts the router and blocks until ctx is canceled or Term is
// called. Callers typically run it in its own goroutine, as the teacher's
// amqp.module.go does with its fx.Lifecycle OnStart hook.
func (r *Router) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	return r.wmRouter.Run(ctx)
}

// Term implements "unsubscribe and join" teardown (§4.1, §5): it cancels
// the router's run context and waits for watermill's own Close, which
// blocks until every in-flight handler invocation has returned. No handler
// can fire once Term returns.
func (r *Router) Term(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.wmRouter.Close()
	})
	g.Go(func() error {
		return r.provider.Close()
	})
	return g.Wait()
}
