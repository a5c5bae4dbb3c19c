package statstore

import (
	"encoding/json"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// LoginStatsRepo is the schema-aware accessor for the global login record.
type LoginStatsRepo struct {
	store contract.KVStore
}

// NewLoginStatsRepo returns a repository over the given store.
func NewLoginStatsRepo(store contract.KVStore) *LoginStatsRepo {
	return &LoginStatsRepo{store: store}
}

// Load reads and normalizes the login record. Missing, corrupt or non-object
// documents yield an empty record; load never fails.
func (r *LoginStatsRepo) Load() *schema.LoginStats {
	raw, _, _, err := r.store.Get(schema.LoginStatsKey)
	if err != nil {
		return schema.NewLoginStats()
	}

	var stats schema.LoginStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return schema.NewLoginStats()
	}
	normalizeLoginStats(&stats)
	return &stats
}

// Save persists the whole login record under one storage slot.
func (r *LoginStatsRepo) Save(stats *schema.LoginStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.store.Set(schema.LoginStatsKey, raw, schema.StatSchemaVersion, time.Now().Unix())
}

// normalizeLoginStats repairs missing maps and negative counters so every
// caller observes the full record shape.
func normalizeLoginStats(stats *schema.LoginStats) {
	if stats.TotalLogins < 0 {
		stats.TotalLogins = 0
	}
	if stats.LastLogin < 0 {
		stats.LastLogin = 0
	}
	if stats.Units == nil {
		stats.Units = map[string]*schema.UnitEntry{}
	}
	for unit, entry := range stats.Units {
		if entry == nil {
			entry = &schema.UnitEntry{Users: map[string]*schema.UserEntry{}}
			stats.Units[unit] = entry
		}
		if entry.Logins < 0 {
			entry.Logins = 0
		}
		if entry.LastLogin < 0 {
			entry.LastLogin = 0
		}
		if entry.Users == nil {
			entry.Users = map[string]*schema.UserEntry{}
		}
		for operator, user := range entry.Users {
			if user == nil {
				entry.Users[operator] = &schema.UserEntry{}
				continue
			}
			if user.Logins < 0 {
				user.Logins = 0
			}
			if user.LastLogin < 0 {
				user.LastLogin = 0
			}
		}
	}
}
