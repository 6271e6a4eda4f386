package services

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// StatusSample is one snapshot of process, system and upstream health.
type StatusSample struct {
	CapturedAt        time.Time `json:"capturedAt"`
	ProcessRSSBytes   int64     `json:"processRssBytes"`
	SystemMemoryTotal int64     `json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `json:"diskTotalBytes"`
	DiskUsedBytes     int64     `json:"diskUsedBytes"`
	ProcessCpuLoad    float64   `json:"processCpuLoad"`
	SystemCpuLoad     float64   `json:"systemCpuLoad"`
	UpstreamReachable bool      `json:"upstreamReachable"`
	UpstreamLatencyMS int64     `json:"upstreamLatencyMillis"`
}

// UpstreamProbe checks that the upstream API answers at all. A non-2xx
// answer still counts as reachable; only transport failures do not.
type UpstreamProbe func(ctx context.Context) error

func CaptureStatus(ctx context.Context, diskPath string, probe UpstreamProbe) StatusSample {
	proc, _ := process.NewProcess(int32(os.Getpid()))
	memStat, _ := mem.VirtualMemory()
	diskStat, err := disk.Usage(diskPath)
	if err != nil {
		diskStat, _ = disk.Usage("/")
	}

	sample := StatusSample{CapturedAt: time.Now().UTC()}
	if proc != nil {
		if info, _ := proc.MemoryInfo(); info != nil {
			sample.ProcessRSSBytes = int64(info.RSS)
		}
		cpuPerc, _ := proc.CPUPercent()
		sample.ProcessCpuLoad = cpuPerc / 100.0
	}
	if memStat != nil {
		sample.SystemMemoryTotal = int64(memStat.Total)
		sample.SystemMemoryUsed = int64(memStat.Total - memStat.Available)
	}
	if diskStat != nil {
		sample.DiskTotalBytes = int64(diskStat.Total)
		sample.DiskUsedBytes = int64(diskStat.Used)
	}
	if sysCPU, _ := cpu.Percent(0, false); len(sysCPU) > 0 {
		sample.SystemCpuLoad = sysCPU[0] / 100.0
	}

	if probe != nil {
		start := time.Now()
		err := probe(ctx)
		sample.UpstreamLatencyMS = time.Since(start).Milliseconds()
		sample.UpstreamReachable = err == nil
	}
	return sample
}

// StatusMonitor keeps the most recent sample for the status endpoint.
type StatusMonitor struct {
	mu   sync.RWMutex
	last StatusSample
	seen bool
}

func NewStatusMonitor() *StatusMonitor {
	return &StatusMonitor{}
}

func (m *StatusMonitor) Set(sample StatusSample) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = sample
	m.seen = true
}

func (m *StatusMonitor) Latest() (StatusSample, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last, m.seen
}

// Run samples on a fixed interval until the context is cancelled.
func (m *StatusMonitor) Run(ctx context.Context, interval time.Duration, diskPath string, probe UpstreamProbe) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	m.Set(CaptureStatus(ctx, diskPath, probe))
	for {
		select {
		case <-ticker.C:
			m.Set(CaptureStatus(ctx, diskPath, probe))
		case <-ctx.Done():
			return
		}
	}
}
