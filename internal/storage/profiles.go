package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Profile is the user profile record shown on the profile and settings screens
type Profile struct {
	ID          string    `json:"id" yaml:"id"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Email       string    `json:"email" yaml:"email"`
	AvatarURL   string    `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	PushToken   string    `json:"push_token,omitempty" yaml:"push_token,omitempty"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// SaveProfile inserts or replaces a profile
func (s *Store) SaveProfile(ctx context.Context, p *Profile) error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	p.UpdatedAt = s.timestamp()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO profiles (id, display_name, email, avatar_url, push_token, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.DisplayName, p.Email, p.AvatarURL, p.PushToken, formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by user ID
func (s *Store) GetProfile(ctx context.Context, id string) (*Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, display_name, email, avatar_url, push_token, updated_at
		FROM profiles WHERE id = ?
	`, id)

	var p Profile
	var updatedAt string
	if err := row.Scan(&p.ID, &p.DisplayName, &p.Email, &p.AvatarURL, &p.PushToken, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if t, err := time.Parse(timeLayout, updatedAt); err == nil {
		p.UpdatedAt = t
	}
	return &p, nil
}
