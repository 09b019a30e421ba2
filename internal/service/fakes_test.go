package service

import (
	"context"
	"gig-marketplace-api/internal/common"
	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/repo/repo_errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// in-memory store shared by the fake repositories; AssignGig reproduces the
// conditional-update semantics of the real store
type fakeStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]entity.User
	gigs     map[uuid.UUID]*entity.Gig
	bids     map[uuid.UUID]*entity.Bid
	bidOrder []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[uuid.UUID]entity.User),
		gigs:  make(map[uuid.UUID]*entity.Gig),
		bids:  make(map[uuid.UUID]*entity.Bid),
	}
}

func (s *fakeStore) addUser(name, email, role string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.users[id] = entity.User{Id: id, Name: name, Email: email, Role: role}

	return id
}

type fakeGigRepo struct {
	st *fakeStore
}

func (r *fakeGigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	ownerUuid, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	r.st.gigs[id] = &entity.Gig{
		Id:          id,
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Status:      common.GigOpen,
		OwnerId:     ownerUuid,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}

	return id, nil
}

func (r *fakeGigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	gig, ok := r.st.gigs[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	copied := *gig

	return &copied, nil
}

func (r *fakeGigRepo) GetGigWithOwnerById(ctx context.Context, id string) (*entity.GigWithOwner, error) {
	gig, err := r.GetGigById(ctx, id)
	if err != nil {
		return nil, err
	}

	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	owner := r.st.users[gig.OwnerId]

	return &entity.GigWithOwner{Gig: *gig, OwnerName: owner.Name, OwnerEmail: owner.Email}, nil
}

func (r *fakeGigRepo) GetOpenGigs(ctx context.Context, keyword string) ([]entity.GigWithOwner, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	gigs := make([]entity.GigWithOwner, 0)
	for _, gig := range r.st.gigs {
		if gig.Status != common.GigOpen {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(gig.Title), strings.ToLower(keyword)) {
			continue
		}
		owner := r.st.users[gig.OwnerId]
		gigs = append(gigs, entity.GigWithOwner{Gig: *gig, OwnerName: owner.Name, OwnerEmail: owner.Email})
	}

	return gigs, nil
}

func (r *fakeGigRepo) GetGigsByOwnerId(ctx context.Context, ownerId string) ([]entity.Gig, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	uuidForm, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, err
	}

	gigs := make([]entity.Gig, 0)
	for _, gig := range r.st.gigs {
		if gig.OwnerId == uuidForm {
			gigs = append(gigs, *gig)
		}
	}

	return gigs, nil
}

func (r *fakeGigRepo) AssignGig(ctx context.Context, gigId uuid.UUID, bidId uuid.UUID, freelancerId uuid.UUID) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	gig, ok := r.st.gigs[gigId]
	if !ok {
		return repo_errors.ErrNotFound
	}

	// the compare-and-swap: only an open gig can be assigned
	if gig.Status != common.GigOpen {
		return repo_errors.ErrNotOpen
	}

	gig.Status = common.GigAssigned
	gig.FreelancerId = uuid.NullUUID{UUID: freelancerId, Valid: true}

	for _, bid := range r.st.bids {
		if bid.GigId == gigId && bid.Id != bidId {
			bid.Status = common.BidRejected
		}
	}
	if bid, ok := r.st.bids[bidId]; ok {
		bid.Status = common.BidHired
	}

	return nil
}

type fakeUserRepo struct {
	st *fakeStore
}

func (r *fakeUserRepo) DoesUserExistById(ctx context.Context, id string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}

	_, ok := r.st.users[uuidForm]

	return ok, nil
}

type fakeBidRepo struct {
	st *fakeStore
}

func (r *fakeBidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, err
	}

	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	for _, bid := range r.st.bids {
		if bid.GigId == gigUuid && bid.FreelancerId == freelancerUuid {
			return uuid.Nil, repo_errors.ErrConflict
		}
	}

	id := uuid.New()
	r.st.bids[id] = &entity.Bid{
		Id:           id,
		GigId:        gigUuid,
		FreelancerId: freelancerUuid,
		Message:      input.Message,
		Price:        input.Price,
		Status:       common.BidPending,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	r.st.bidOrder = append(r.st.bidOrder, id)

	return id, nil
}

func (r *fakeBidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	bid, ok := r.st.bids[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	copied := *bid

	return &copied, nil
}

func (r *fakeBidRepo) GetGigBids(ctx context.Context, gigId string) ([]entity.BidWithBidder, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	uuidForm, err := uuid.Parse(gigId)
	if err != nil {
		return nil, err
	}

	bids := make([]entity.BidWithBidder, 0)
	for _, id := range r.st.bidOrder {
		bid := r.st.bids[id]
		if bid.GigId != uuidForm {
			continue
		}
		bidder := r.st.users[bid.FreelancerId]
		bids = append(bids, entity.BidWithBidder{Bid: *bid, BidderName: bidder.Name, BidderEmail: bidder.Email})
	}

	return bids, nil
}

func (r *fakeBidRepo) GetFreelancerBids(ctx context.Context, freelancerId string) ([]entity.BidWithGig, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	uuidForm, err := uuid.Parse(freelancerId)
	if err != nil {
		return nil, err
	}

	// newest first
	bids := make([]entity.BidWithGig, 0)
	for i := len(r.st.bidOrder) - 1; i >= 0; i-- {
		bid := r.st.bids[r.st.bidOrder[i]]
		if bid.FreelancerId != uuidForm {
			continue
		}
		gig := r.st.gigs[bid.GigId]
		bids = append(bids, entity.BidWithGig{
			Bid: *bid, GigTitle: gig.Title, GigStatus: gig.Status, GigOwnerId: gig.OwnerId,
		})
	}

	return bids, nil
}

func (r *fakeBidRepo) HasBid(ctx context.Context, gigId string, freelancerId string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return false, err
	}

	freelancerUuid, err := uuid.Parse(freelancerId)
	if err != nil {
		return false, err
	}

	for _, bid := range r.st.bids {
		if bid.GigId == gigUuid && bid.FreelancerId == freelancerUuid {
			return true, nil
		}
	}

	return false, nil
}

type capturedEvent struct {
	userId string
	event  entity.Notification
}

type captureNotifier struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (n *captureNotifier) Publish(userId string, event entity.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.events = append(n.events, capturedEvent{userId: userId, event: event})
}

func (n *captureNotifier) captured() []capturedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]capturedEvent, len(n.events))
	copy(out, n.events)

	return out
}

type testEnv struct {
	store    *fakeStore
	gigSvc   *GigService
	bidSvc   *BidService
	notifier *captureNotifier
}

func newTestEnv() *testEnv {
	store := newFakeStore()
	gigRepo := &fakeGigRepo{st: store}
	bidRepo := &fakeBidRepo{st: store}
	userRepo := &fakeUserRepo{st: store}
	notifier := &captureNotifier{}

	return &testEnv{
		store:    store,
		gigSvc:   &GigService{gigRepo: gigRepo, userRepo: userRepo},
		bidSvc:   &BidService{bidRepo: bidRepo, gigRepo: gigRepo, userRepo: userRepo, notifier: notifier},
		notifier: notifier,
	}
}
