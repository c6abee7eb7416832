package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

var tracer = otel.Tracer("housing-repository")

// GormRoomRepositoryWithTracing wraps GormRoomRepository with tracing
type GormRoomRepositoryWithTracing struct {
	*GormRoomRepository
}

// NewGormRoomRepositoryWithTracing creates a new repository with tracing
func NewGormRoomRepositoryWithTracing(db *gorm.DB) *GormRoomRepositoryWithTracing {
	return &GormRoomRepositoryWithTracing{
		GormRoomRepository: NewGormRoomRepository(db),
	}
}

// FindByFerme with tracing
func (r *GormRoomRepositoryWithTracing) FindByFermeWithContext(ctx context.Context, fermeID uint, limit, offset int) ([]domain.Room, error) {
	_, span := tracer.Start(ctx, "repository.FindByFerme",
		trace.WithAttributes(
			attribute.Int("room.ferme_id", int(fermeID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	rooms, err := r.GormRoomRepository.FindByFerme(fermeID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(rooms)))
	return rooms, nil
}

// FindByKey with tracing
func (r *GormRoomRepositoryWithTracing) FindByKeyWithContext(ctx context.Context, key domain.RoomKey) (*domain.Room, error) {
	_, span := tracer.Start(ctx, "repository.FindByKey",
		trace.WithAttributes(
			attribute.Int("room.ferme_id", int(key.FermeID)),
			attribute.String("room.numero", key.Numero),
			attribute.String("room.genre", key.Genre),
		),
	)
	defer span.End()

	room, err := r.GormRoomRepository.FindByKey(key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("room.id", int(room.ID)))
	return room, nil
}

// UpdateOccupancy with tracing
func (r *GormRoomRepositoryWithTracing) UpdateOccupancyWithContext(ctx context.Context, id uint, occupants int, liste []int64, at time.Time) error {
	_, span := tracer.Start(ctx, "repository.UpdateOccupancy",
		trace.WithAttributes(
			attribute.Int("room.id", int(id)),
			attribute.Int("room.occupants", occupants),
			attribute.Int("room.occupant_count", len(liste)),
		),
	)
	defer span.End()

	err := r.GormRoomRepository.UpdateOccupancy(id, occupants, liste, at)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
