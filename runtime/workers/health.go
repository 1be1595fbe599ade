package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"duochat/contract"
	"duochat/domain/event"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HealthWorker)(nil)

// HealthWorker periodically logs the process's own resource usage next to
// the activity counters, so a droop in broadcast throughput can be
// correlated with memory or CPU pressure without external tooling.
type HealthWorker struct {
	log            *slog.Logger
	counter        *event.Counter
	metricInterval time.Duration
}

func NewHealthWorker(log *slog.Logger, counter *event.Counter,
	metricInterval time.Duration) *HealthWorker {
	return &HealthWorker{log: log, counter: counter, metricInterval: metricInterval}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Core health",
				"ram_bytes", rss,
				"cpu_percent", cpu,
				"joins", w.counter.Get(event.RoomJoinedType),
				"rejections", w.counter.Get(event.RoomRejectedType),
				"messages", w.counter.Get(event.MessageSentType),
			)
		}
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
