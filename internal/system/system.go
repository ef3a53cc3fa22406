// Package system sizes concurrency from the host's actual resources.
package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/nickthelegend/podio-ai/internal/config"
)

// WorkerCount picks the export worker pool size: one worker per physical
// core, capped so frame rendering never starves the API server.
func WorkerCount() int {
	counts, err := cpu.Counts(false)
	if err != nil || counts < 1 {
		counts = runtime.NumCPU()
	}
	workers := counts
	if workers > 4 {
		workers = 4
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// SynthesisBatchSize picks how many TTS calls run at once. Each in-flight
// call holds an audio buffer, so the size scales down on small machines.
func SynthesisBatchSize() int {
	vm, err := mem.VirtualMemory()
	if err != nil {
		config.Log.WithError(err).Warn("Could not read memory stats, using default batch size")
		return 3
	}

	gb := vm.Available / (1 << 30)
	switch {
	case gb >= 8:
		return 6
	case gb >= 4:
		return 4
	case gb >= 2:
		return 3
	default:
		return 2
	}
}
