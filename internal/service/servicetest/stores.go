// Package servicetest provides in-memory store implementations for tests.
package servicetest

import (
	"sort"
	"sync"
	"time"

	"hackathon_judging_backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is an in-memory stand-in for the repository layer. It implements
// every store interface the services consume, with the same not-found
// semantics GORM has.
type Store struct {
	mu sync.Mutex

	Hackathons map[uint]model.Hackathon
	Teams      map[uint]model.Team
	Criteria   map[uint]model.Criterion
	Judges     map[uint]model.Judge
	Scores     []model.ScoreEntry
	Snapshots  map[string]model.ResultSnapshot

	nextScoreID uint

	// ReplaceErr, when set, makes Replace fail without touching stored
	// entries, mimicking a rolled-back transaction.
	ReplaceErr error
}

func NewStore() *Store {
	return &Store{
		Hackathons: make(map[uint]model.Hackathon),
		Teams:      make(map[uint]model.Team),
		Criteria:   make(map[uint]model.Criterion),
		Judges:     make(map[uint]model.Judge),
		Snapshots:  make(map[string]model.ResultSnapshot),
	}
}

func (s *Store) FindByID(id uint) (*model.Hackathon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.Hackathons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &h, nil
}

type TeamsView struct{ *Store }

// TeamStore returns the team-facing view of the fake.
func (s *Store) TeamStore() TeamsView { return TeamsView{s} }

func (s TeamsView) FindByID(id uint) (*model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.Teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (s TeamsView) ListByHackathon(hackathonID uint) ([]model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var teams []model.Team
	for _, t := range s.Teams {
		if t.HackathonID == hackathonID {
			teams = append(teams, t)
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamNumber < teams[j].TeamNumber })
	return teams, nil
}

func (s TeamsView) CountByHackathon(hackathonID uint) (int64, error) {
	teams, _ := s.ListByHackathon(hackathonID)
	return int64(len(teams)), nil
}

func (s *Store) ListActiveByHackathon(hackathonID uint) ([]model.Criterion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var criteria []model.Criterion
	for _, c := range s.Criteria {
		if c.HackathonID == hackathonID && c.IsActive {
			criteria = append(criteria, c)
		}
	}
	sort.Slice(criteria, func(i, j int) bool { return criteria[i].ID < criteria[j].ID })
	return criteria, nil
}

type JudgesView struct{ *Store }

// JudgeStore returns the judge-facing view of the fake.
func (s *Store) JudgeStore() JudgesView { return JudgesView{s} }

func (s JudgesView) FindActiveByUser(userID, hackathonID uint) (*model.Judge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.Judges {
		if j.UserID == userID && j.HackathonID == hackathonID && j.IsActive {
			judge := j
			return &judge, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s JudgesView) ListByHackathon(hackathonID uint) ([]model.Judge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var judges []model.Judge
	for _, j := range s.Judges {
		if j.HackathonID == hackathonID {
			judges = append(judges, j)
		}
	}
	sort.Slice(judges, func(i, j int) bool { return judges[i].ID < judges[j].ID })
	return judges, nil
}

func (s *Store) Replace(judgeID, teamID, hackathonID uint, entries []model.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReplaceErr != nil {
		return s.ReplaceErr
	}

	kept := s.Scores[:0]
	for _, e := range s.Scores {
		if !(e.JudgeID == judgeID && e.TeamID == teamID && e.HackathonID == hackathonID) {
			kept = append(kept, e)
		}
	}
	s.Scores = kept

	for _, e := range entries {
		s.nextScoreID++
		e.ID = s.nextScoreID
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now()
		}
		s.Scores = append(s.Scores, e)
	}
	return nil
}

func (s *Store) ListByHackathon(hackathonID uint) ([]model.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []model.ScoreEntry
	for _, e := range s.Scores {
		if e.HackathonID == hackathonID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *Store) ListByJudge(judgeID, hackathonID uint) ([]model.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []model.ScoreEntry
	for _, e := range s.Scores {
		if e.JudgeID == judgeID && e.HackathonID == hackathonID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

type SnapshotsView struct{ *Store }

// SnapshotStore returns the snapshot-facing view of the fake.
func (s *Store) SnapshotStore() SnapshotsView { return SnapshotsView{s} }

func (s SnapshotsView) Create(snapshot *model.ResultSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}
	s.Snapshots[snapshot.ID] = *snapshot
	return nil
}

func (s SnapshotsView) List() ([]model.SnapshotSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var summaries []model.SnapshotSummary
	for _, snap := range s.Snapshots {
		summaries = append(summaries, model.SnapshotSummary{
			ID:          snap.ID,
			HackathonID: snap.HackathonID,
			Name:        snap.Name,
			CreatedAt:   snap.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].CreatedAt.After(summaries[j].CreatedAt) })
	return summaries, nil
}

func (s SnapshotsView) FindByID(id string) (*model.ResultSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.Snapshots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &snap, nil
}
