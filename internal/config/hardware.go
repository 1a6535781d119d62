package config

import "runtime"

// Worker count resolution chain (highest priority first):
//  1. CLI flag (--workers)
//  2. Environment variable (RSACORE_WORKERS)
//  3. Hardware estimation (this file)

// ApplyAdaptiveDefaults fills in configuration values that are still at
// their zero default with hardware-derived estimates, preserving any
// user-specified overrides.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkerCount()
	}
	return cfg
}

// EstimateWorkerCount picks a concurrency bound for the self-test suites.
// The suites are CPU-bound modular exponentiations, so one worker per core
// is the right shape, capped to avoid oversubscription on large machines.
func EstimateWorkerCount() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 8:
		return numCPU
	default:
		return 8
	}
}
