package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	resourceHostCPU    = "host_cpu_percent"
	resourceHostMemory = "host_memory_bytes"
	resourceHeap       = "heap_alloc_bytes"
	resourceGoroutines = "goroutines"
)

// ReplicaResources снимок ресурсов хоста и процесса реплики.
var ReplicaResources = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "replica_resource_usage",
		Help: "Host and process resource usage sampled by the replica",
	},
	[]string{"resource"},
)

// SystemCollector задача background.Worker, обновляет ReplicaResources.
type SystemCollector struct {
	interval time.Duration
	gauges   *prometheus.GaugeVec
}

func NewSystemCollector() *SystemCollector {
	return &SystemCollector{interval: 5 * time.Second, gauges: ReplicaResources}
}

func (c *SystemCollector) TTL() time.Duration { return c.interval }

func (c *SystemCollector) Info() string { return "replica resource sampler" }

// Do: недоступные на платформе показатели gopsutil пропускаются.
func (c *SystemCollector) Do(ctx context.Context) error {
	if percent, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percent) == 1 {
		c.gauges.WithLabelValues(resourceHostCPU).Set(percent[0])
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		c.gauges.WithLabelValues(resourceHostMemory).Set(float64(vm.Used))
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	c.gauges.WithLabelValues(resourceHeap).Set(float64(ms.HeapAlloc))
	c.gauges.WithLabelValues(resourceGoroutines).Set(float64(runtime.NumGoroutine()))

	return nil
}
