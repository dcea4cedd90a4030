package entities

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm/schema"
)

const wallClockLayout = "2006-01-02 15:04:05.999999999"

func init() {
	schema.RegisterSerializer("wallclock", WallClockSerializer{})
}

// WallClockSerializer stores a time as its local wall clock reading with no
// zone or offset, and reads it back in time.Local.
type WallClockSerializer struct{}

// Value implements schema.SerializerValuerInterface.
func (WallClockSerializer) Value(_ context.Context, _ *schema.Field, _ reflect.Value, fieldValue interface{}) (interface{}, error) {
	switch v := fieldValue.(type) {
	case time.Time:
		return v.In(time.Local).Format(wallClockLayout), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return v.In(time.Local).Format(wallClockLayout), nil
	default:
		return nil, fmt.Errorf("wallclock: unsupported type %T", fieldValue)
	}
}

// Scan implements schema.SerializerInterface.
func (WallClockSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue interface{}) error {
	var t time.Time
	switch v := dbValue.(type) {
	case nil:
	case time.Time:
		// Drivers hand back zone-less columns as UTC; only the reading matters.
		t = time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.Local)
	case string:
		parsed, err := time.ParseInLocation(wallClockLayout, v, time.Local)
		if err != nil {
			return fmt.Errorf("wallclock: %w", err)
		}
		t = parsed
	case []byte:
		parsed, err := time.ParseInLocation(wallClockLayout, string(v), time.Local)
		if err != nil {
			return fmt.Errorf("wallclock: %w", err)
		}
		t = parsed
	default:
		return fmt.Errorf("wallclock: unsupported database value %T", dbValue)
	}
	return field.Set(ctx, dst, t)
}
