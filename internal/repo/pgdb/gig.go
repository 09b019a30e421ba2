package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo/repo_errors"
	"gig-marketplace-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type GigRepo struct {
	*postgres.Postgres
}

func NewGigRepo(pgdb *postgres.Postgres) *GigRepo {
	return &GigRepo{pgdb}
}

func (r *GigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	ownerUuid, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	createGigSql, args, _ := r.SqlBuilder.
		Insert("gig").
		Columns("title", "description", "budget", "status", "owner_id").
		Values(input.Title, input.Description, input.Budget, common.GigOpen, ownerUuid).
		Suffix("RETURNING id").
		ToSql()

	var gigId uuid.UUID
	err = r.Database.QueryRow(createGigSql, args...).Scan(&gigId)
	if err != nil {
		return uuid.Nil, err
	}

	return gigId, nil
}

func (r *GigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getGigSql, args, _ := r.SqlBuilder.
		Select("id, title, description, budget, status, owner_id, freelancer_id, created_at").
		From("gig").
		Where("id = ?", uuidForm).
		ToSql()

	var gig entity.Gig
	var createdAt time.Time
	row := r.Database.QueryRow(getGigSql, args...)
	err = row.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget, &gig.Status,
		&gig.OwnerId, &gig.FreelancerId, &createdAt)
	gig.CreatedAt = createdAt.Format(time.RFC3339)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &gig, repo_errors.ErrNotFound
		}

		return &gig, err
	}

	return &gig, nil
}

func (r *GigRepo) GetGigWithOwnerById(ctx context.Context, id string) (*entity.GigWithOwner, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getGigSql, args, _ := r.SqlBuilder.
		Select("gig.id, gig.title, gig.description, gig.budget, gig.status, gig.owner_id, gig.freelancer_id, gig.created_at, users.name, users.email").
		From("gig").
		InnerJoin("users on users.id = gig.owner_id").
		Where("gig.id = ?", uuidForm).
		ToSql()

	var gig entity.GigWithOwner
	var createdAt time.Time
	row := r.Database.QueryRow(getGigSql, args...)
	err = row.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget, &gig.Status,
		&gig.OwnerId, &gig.FreelancerId, &createdAt, &gig.OwnerName, &gig.OwnerEmail)
	gig.CreatedAt = createdAt.Format(time.RFC3339)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &gig, repo_errors.ErrNotFound
		}

		return &gig, err
	}

	return &gig, nil
}

func (r *GigRepo) GetOpenGigs(ctx context.Context, keyword string) ([]entity.GigWithOwner, error) {
	builder := r.SqlBuilder.
		Select("gig.id, gig.title, gig.description, gig.budget, gig.status, gig.owner_id, gig.freelancer_id, gig.created_at, users.name, users.email").
		From("gig").
		InnerJoin("users on users.id = gig.owner_id").
		Where("gig.status = ?", common.GigOpen)

	if keyword != "" {
		builder = builder.Where("gig.title ILIKE ?", "%"+keyword+"%")
	}

	sqlReq, args, _ := builder.
		OrderBy("gig.created_at DESC").
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := make([]entity.GigWithOwner, 0)
	for rows.Next() {
		var gig entity.GigWithOwner
		var createdAt time.Time
		if err := rows.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget, &gig.Status,
			&gig.OwnerId, &gig.FreelancerId, &createdAt, &gig.OwnerName, &gig.OwnerEmail); err != nil {
			return gigs, err
		}
		gig.CreatedAt = createdAt.Format(time.RFC3339)
		gigs = append(gigs, gig)
	}
	if err = rows.Err(); err != nil {
		return gigs, err
	}

	return gigs, nil
}

func (r *GigRepo) GetGigsByOwnerId(ctx context.Context, ownerId string) ([]entity.Gig, error) {
	uuidForm, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, err
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select("id, title, description, budget, status, owner_id, freelancer_id, created_at").
		From("gig").
		Where("owner_id = ?", uuidForm).
		OrderBy("created_at DESC").
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := make([]entity.Gig, 0)
	for rows.Next() {
		var gig entity.Gig
		var createdAt time.Time
		if err := rows.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget, &gig.Status,
			&gig.OwnerId, &gig.FreelancerId, &createdAt); err != nil {
			return gigs, err
		}
		gig.CreatedAt = createdAt.Format(time.RFC3339)
		gigs = append(gigs, gig)
	}
	if err = rows.Err(); err != nil {
		return gigs, err
	}

	return gigs, nil
}

// AssignGig runs the whole hire transition in one transaction. The conditional
// update on gig.status is the commit point: of two concurrent hires on the
// same gig exactly one sees a row affected, the other gets ErrNotOpen.
func (r *GigRepo) AssignGig(ctx context.Context, gigId uuid.UUID, bidId uuid.UUID, freelancerId uuid.UUID) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	assignSql, args, _ := r.SqlBuilder.
		Update("gig").
		Set("status", common.GigAssigned).
		Set("freelancer_id", freelancerId).
		Where("id = ?", gigId).
		Where("status = ?", common.GigOpen).
		RunWith(tx).
		ToSql()

	res, err := tx.Exec(assignSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	if affected == 0 {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return repo_errors.ErrNotOpen
	}

	hireBidSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", common.BidHired).
		Where("id = ?", bidId).
		RunWith(tx).
		ToSql()

	if _, err := tx.Exec(hireBidSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	rejectOthersSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", common.BidRejected).
		Where("gig_id = ?", gigId).
		Where("id <> ?", bidId).
		RunWith(tx).
		ToSql()

	if _, err := tx.Exec(rejectOthersSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
