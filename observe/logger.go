package observe

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/netgen/core"
)

// Logger returns an Observer that traces each step as a zap debug record.
// Node events carry only "u"; edge events carry "u" and "v".
func Logger(l *zap.Logger) Observer {
	return func(g *core.Graph, s Step) {
		if ce := l.Check(zap.DebugLevel, s.Kind.String()); ce != nil {
			fields := []zap.Field{
				zap.Int("seq", s.Seq),
				zap.Int("round", s.Round),
				zap.Int("u", int(s.U)),
			}
			if s.Kind == EdgeAdded || s.Kind == EdgeRemoved {
				fields = append(fields, zap.Int("v", int(s.V)))
			}
			fields = append(fields, zap.Int("edges", g.EdgeCount()))
			ce.Write(fields...)
		}
	}
}
