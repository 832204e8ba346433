// Package scheduler drives the recurring reminder sweep. The firing
// schedule is an RRULE so the daily 09:00 default can be changed without
// touching code.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

// Run blocks, firing fn at every occurrence of the rule until the context
// is cancelled. The rule is anchored at local midnight so BYHOUR means
// local wall-clock time. The sweep itself keeps no state between firings;
// a restart within the same day can fire again for the same events.
func Run(ctx context.Context, ruleStr string, logger *zap.Logger, fn func(context.Context)) error {
	rule, err := rrule.StrToRRule(ruleStr)
	if err != nil {
		return fmt.Errorf("invalid reminder rrule %q: %w", ruleStr, err)
	}

	now := time.Now()
	y, m, d := now.Date()
	rule.DTStart(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))

	for {
		next := rule.After(time.Now(), false)
		if next.IsZero() {
			logger.Warn("reminder rule has no further occurrences", zap.String("rrule", ruleStr))
			return nil
		}
		logger.Info("next reminder sweep scheduled", zap.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		fn(ctx)
	}
}
