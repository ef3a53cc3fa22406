package config

import (
	supa "github.com/supabase-community/supabase-go"
)

var SupabaseClient *supa.Client

// InitSupabase initializes the shared Supabase client. Persistence is
// optional: with no URL configured the client stays nil and the store
// layer reports persistence as unavailable.
func InitSupabase(cfg *Config) error {
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		Log.Warn("Supabase not configured, project persistence disabled")
		return nil
	}

	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return err
	}

	SupabaseClient = client
	Log.Info("Supabase client initialized")
	return nil
}
