package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"camerakitsample/internal/models"
)

// DefaultsRepository stores string and string-list values by key.
type DefaultsRepository interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
	GetStrings(ctx context.Context, key string) ([]string, bool, error)
	SetStrings(ctx context.Context, key string, values []string) error
	Delete(ctx context.Context, key string) error
}

type defaultsRepository struct {
	db *gorm.DB
}

func NewDefaultsRepository(db *gorm.DB) DefaultsRepository {
	return &defaultsRepository{db: db}
}

func (r *defaultsRepository) get(ctx context.Context, key string) (*models.DebugSetting, error) {
	var setting models.DebugSetting
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *defaultsRepository) put(ctx context.Context, key, value string) error {
	setting := models.DebugSetting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&setting).Error
}

func (r *defaultsRepository) GetString(ctx context.Context, key string) (string, bool, error) {
	setting, err := r.get(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

func (r *defaultsRepository) SetString(ctx context.Context, key, value string) error {
	return r.put(ctx, key, value)
}

// GetStrings reports a stored value that is not a JSON string array as absent,
// the same way a string stored under a list key reads back empty.
func (r *defaultsRepository) GetStrings(ctx context.Context, key string) ([]string, bool, error) {
	setting, err := r.get(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var values []string
	if err := json.Unmarshal([]byte(setting.Value), &values); err != nil || values == nil {
		return nil, false, nil
	}
	return values, true, nil
}

func (r *defaultsRepository) SetStrings(ctx context.Context, key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.put(ctx, key, string(data))
}

func (r *defaultsRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("setting_key = ?", key).Delete(&models.DebugSetting{}).Error
}
