// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Per-binary rules live on the
// narrower views ([ClientConfig], [StubServerConfig]); the shared config only
// rejects values no binary can use.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.IOPoolSize < 0 || cfg.Workers.QueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Login.Timeout < 0 {
		return ErrInvalidLoginConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.IOPoolSize <= 0 || cfg.Workers.QueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Login.Timeout < 0 || cfg.Login.TokenKey == "" {
		return ErrInvalidLoginConfigs
	}

	return nil
}

func (cfg *StubServerConfig) validate() error {
	if cfg.TokenSignKey == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidStubServerConfigs
	}

	for _, account := range cfg.Accounts {
		login, password, ok := strings.Cut(account, ":")
		if !ok || login == "" || password == "" {
			return ErrInvalidStubServerConfigs
		}
	}

	return nil
}
