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
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, err
	}

	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	createBidSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("gig_id", "freelancer_id", "message", "price", "status").
		Values(gigUuid, freelancerUuid, input.Message, input.Price, common.BidPending).
		Suffix("RETURNING id").
		ToSql()

	var bidId uuid.UUID
	err = r.Database.QueryRow(createBidSql, args...).Scan(&bidId)
	if err != nil {
		// the UNIQUE (gig_id, freelancer_id) constraint closes the race
		// between two concurrent duplicate submissions
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return uuid.Nil, repo_errors.ErrConflict
		}

		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBidSql, args, _ := r.SqlBuilder.
		Select("id, gig_id, freelancer_id, message, price, status, created_at").
		From("bid").
		Where("id = ?", uuidForm).
		ToSql()

	var bid entity.Bid
	var createdAt time.Time
	row := r.Database.QueryRow(getBidSql, args...)
	err = row.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message, &bid.Price,
		&bid.Status, &createdAt)
	bid.CreatedAt = createdAt.Format(time.RFC3339)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &bid, repo_errors.ErrNotFound
		}

		return &bid, err
	}

	return &bid, nil
}

func (r *BidRepo) GetGigBids(ctx context.Context, gigId string) ([]entity.BidWithBidder, error) {
	uuidForm, err := uuid.Parse(gigId)
	if err != nil {
		return nil, err
	}

	getGigBidsSql, args, _ := r.SqlBuilder.
		Select("bid.id, bid.gig_id, bid.freelancer_id, bid.message, bid.price, bid.status, bid.created_at, users.name, users.email").
		From("bid").
		InnerJoin("users on users.id = bid.freelancer_id").
		Where("bid.gig_id = ?", uuidForm).
		OrderBy("bid.created_at ASC").
		ToSql()

	rows, err := r.Database.Query(getGigBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.BidWithBidder, 0)
	for rows.Next() {
		var bid entity.BidWithBidder
		var createdAt time.Time
		if err := rows.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message, &bid.Price,
			&bid.Status, &createdAt, &bid.BidderName, &bid.BidderEmail); err != nil {
			return bids, err
		}
		bid.CreatedAt = createdAt.Format(time.RFC3339)
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

func (r *BidRepo) GetFreelancerBids(ctx context.Context, freelancerId string) ([]entity.BidWithGig, error) {
	uuidForm, err := uuid.Parse(freelancerId)
	if err != nil {
		return nil, err
	}

	getFreelancerBidsSql, args, _ := r.SqlBuilder.
		Select("bid.id, bid.gig_id, bid.freelancer_id, bid.message, bid.price, bid.status, bid.created_at, gig.title, gig.status, gig.owner_id").
		From("bid").
		InnerJoin("gig on gig.id = bid.gig_id").
		Where("bid.freelancer_id = ?", uuidForm).
		OrderBy("bid.created_at DESC").
		ToSql()

	rows, err := r.Database.Query(getFreelancerBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.BidWithGig, 0)
	for rows.Next() {
		var bid entity.BidWithGig
		var createdAt time.Time
		if err := rows.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message, &bid.Price,
			&bid.Status, &createdAt, &bid.GigTitle, &bid.GigStatus, &bid.GigOwnerId); err != nil {
			return bids, err
		}
		bid.CreatedAt = createdAt.Format(time.RFC3339)
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

func (r *BidRepo) HasBid(ctx context.Context, gigId string, freelancerId string) (bool, error) {
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return false, err
	}

	freelancerUuid, err := uuid.Parse(freelancerId)
	if err != nil {
		return false, err
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select("id").
		From("bid").
		Where("gig_id = ?", gigUuid).
		Where("freelancer_id = ?", freelancerUuid).
		ToSql()

	var uid uuid.UUID
	err = r.Database.QueryRow(sqlReq, args...).Scan(&uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
