package sim

import (
	"github.com/chronicle-sim/chronicle/internal/core/event"
	"go.uber.org/zap"
)

// subscribeEventLog records world events as they are delivered at the start
// of the following tick.
func subscribeEventLog(bus *event.Bus, log *zap.Logger) {
	event.Subscribe(bus, func(ev event.TurnAdvanced) {
		log.Info("turn advanced", zap.Int("turn", ev.Turn))
	})
	event.Subscribe(bus, func(ev event.ActiveAgentChanged) {
		log.Info("active agent changed", zap.Stringer("entity", ev.EntityID))
	})
	event.Subscribe(bus, func(ev event.ActionPerformed) {
		log.Info("action performed",
			zap.String("action", ev.Action),
			zap.Stringer("subject", ev.Subject),
			zap.Stringer("target", ev.Target))
	})
	event.Subscribe(bus, func(ev event.EntitySpawned) {
		log.Debug("entity spawned",
			zap.Stringer("entity", ev.EntityID),
			zap.String("kind", ev.Kind),
			zap.String("name", ev.Name))
	})
	event.Subscribe(bus, func(ev event.EntityDespawned) {
		log.Debug("entity despawned", zap.Stringer("entity", ev.EntityID), zap.String("name", ev.Name))
	})
}
