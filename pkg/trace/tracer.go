// Package trace wraps go.uber.org/zap to give the rules executor a
// structured logging hook: one entry per rule application that
// actually changed the plan, following the teacher's own zap-based
// tracing in its optimizer package.
package trace

import (
	"go.uber.org/zap"

	"github.com/sqlplan/logicplan/pkg/config"
)

// Tracer receives one notification per plan-changing rule application.
type Tracer interface {
	RuleApplied(batchName, ruleName, before, after string)
}

// ZapTracer logs rule applications through a zap.Logger at debug
// level, one structured entry per change.
type ZapTracer struct {
	logger *zap.Logger
}

// NewZapTracer builds a ZapTracer configured from cfg (level and
// json/text format), mirroring the teacher's pkg/config-driven logger
// setup.
func NewZapTracer(cfg config.LogConfig) (*ZapTracer, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Format == "text" {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapTracer{logger: logger}, nil
}

// RuleApplied logs one rule application at debug level.
func (t *ZapTracer) RuleApplied(batchName, ruleName, before, after string) {
	t.logger.Debug("rule applied",
		zap.String("batch", batchName),
		zap.String("rule", ruleName),
		zap.String("before", before),
		zap.String("after", after),
	)
}

// NoopTracer discards every notification. A RulesExecutor with no
// tracer attached skips trace emission without needing one.
type NoopTracer struct{}

func (NoopTracer) RuleApplied(string, string, string, string) {}
