package session

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sandeepkv93/repsd/internal/importer"
	"github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/storage"
)

const persistTimeout = 5 * time.Second

// Session owns the in-memory application state: the activity log (newest
// first), contacts (newest first), the weekly goal and the per-workout
// dismissed set. Mutations update memory first and persist in the background;
// a failed write is logged and dropped, the in-memory state stays the source
// of truth for the rest of the run.
type Session struct {
	Log      []model.ActivityEntry
	Contacts []model.Contact
	Goal     int

	repo      storage.Repository
	logger    *log.Logger
	now       func() time.Time
	rng       *rand.Rand
	dismissed map[string]bool
	wg        sync.WaitGroup
}

type Option func(*Session)

// WithClock fixes the session's notion of now. Tests use it; production code
// does not.
func WithClock(fn func() time.Time) Option {
	return func(s *Session) { s.now = fn }
}

// WithRand replaces the sampling source used by the power hour workout.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

func New(repo storage.Repository, logger *log.Logger, opts ...Option) *Session {
	s := &Session{
		Goal:      model.DefaultWeeklyGoal,
		repo:      repo,
		logger:    logger,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		dismissed: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load pulls persisted state into memory. It never fails the caller: a broken
// or empty store degrades to a fresh session with the default goal, and the
// problem is logged.
func (s *Session) Load(ctx context.Context) {
	entries, err := s.repo.GetActivityLog(ctx)
	if err != nil {
		s.logger.Warn("load activity log", "err", err)
		entries = nil
	}
	s.Log = entriesToModel(entries)

	contacts, err := s.repo.GetContacts(ctx)
	if err != nil {
		s.logger.Warn("load contacts", "err", err)
		contacts = nil
	}
	s.Contacts = contactsToModel(contacts)

	goal, err := s.repo.GetWeeklyGoal(ctx)
	if err != nil {
		s.logger.Warn("load weekly goal", "err", err)
		goal = model.DefaultWeeklyGoal
	}
	s.Goal = goal
}

// Today returns the current date in the session's clock.
func (s *Session) Today() string {
	return model.FormatDate(s.now())
}

// Rand exposes the sampling source for the power hour workout.
func (s *Session) Rand() *rand.Rand {
	return s.rng
}

// Flush waits for every in-flight persistence write. Call on shutdown and in
// tests before asserting on the store.
func (s *Session) Flush() {
	s.wg.Wait()
}

// LogActivity appends one rep for the given taxonomy activity. The contact
// name is free text and may be empty. Unknown activity ids are ignored.
func (s *Session) LogActivity(activityID, contactName string) (model.ActivityEntry, bool) {
	activity, ok := model.ActivityByID(activityID)
	if !ok {
		return model.ActivityEntry{}, false
	}
	now := s.now()
	entry := model.ActivityEntry{
		ID:          uuid.NewString(),
		ActivityID:  activity.ID,
		Name:        activity.Name,
		Emoji:       activity.Emoji,
		Points:      activity.Points,
		Tier:        activity.Tier,
		Date:        model.FormatDate(now),
		Timestamp:   now,
		ContactName: strings.TrimSpace(contactName),
	}
	s.Log = append([]model.ActivityEntry{entry}, s.Log...)

	stored := entryToStorage(entry)
	s.persist("add activity", func(ctx context.Context) error {
		return s.repo.AddActivity(ctx, stored)
	})
	return entry, true
}

// activityForSeniority picks the default rep logged when a workout card is
// completed. Unset seniority counts as peer.
func activityForSeniority(sen model.Seniority) string {
	if sen == model.SeniorityUnset {
		sen = model.SeniorityPeer
	}
	switch sen {
	case model.SeniorityJunior, model.SeniorityPeer:
		return "send_dm"
	case model.SenioritySenior:
		return "coffee_chat"
	case model.SeniorityExecutive:
		return "congrats_msg"
	default:
		return "follow_up"
	}
}

// CompleteWorkoutCard logs the seniority-appropriate rep for the card's
// contact, stamps the contact as reached today and removes the card from the
// current workout.
func (s *Session) CompleteWorkoutCard(contact model.Contact) (model.ActivityEntry, bool) {
	entry, ok := s.LogActivity(activityForSeniority(contact.Seniority), contact.Name)
	if !ok {
		return model.ActivityEntry{}, false
	}
	s.touchContact(contact.ID, s.Today(), false)
	s.dismissed[contact.ID] = true
	return entry, true
}

// Dismiss removes a contact from the current workout without logging anything.
func (s *Session) Dismiss(contactID string) {
	s.dismissed[contactID] = true
}

// ResetDismissed clears the dismissed set; called when the workout category
// changes.
func (s *Session) ResetDismissed() {
	s.dismissed = make(map[string]bool)
}

// Dismissed returns the live dismissed set for card selection.
func (s *Session) Dismissed() map[string]bool {
	return s.dismissed
}

// SaveContact creates or updates a contact. A blank name is silently ignored.
// New contacts default to cold warmth; a missing last-contact date becomes
// today. Editing counts as an interaction, so the existing contact's
// last-contact date restarts at today.
func (s *Session) SaveContact(in model.Contact) (model.Contact, bool) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.Contact{}, false
	}
	if !in.Warmth.IsValid() {
		in.Warmth = model.WarmthCold
	}
	if in.LastContact == "" {
		in.LastContact = s.Today()
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
		in.CreatedAt = s.now()
		s.Contacts = append([]model.Contact{in}, s.Contacts...)
	} else {
		replaced := false
		for i := range s.Contacts {
			if s.Contacts[i].ID == in.ID {
				in.LastContact = s.Today()
				if in.CreatedAt.IsZero() {
					in.CreatedAt = s.Contacts[i].CreatedAt
				}
				s.Contacts[i] = in
				replaced = true
				break
			}
		}
		if !replaced {
			if in.CreatedAt.IsZero() {
				in.CreatedAt = s.now()
			}
			s.Contacts = append([]model.Contact{in}, s.Contacts...)
		}
	}

	stored := contactToStorage(in)
	s.persist("save contact", func(ctx context.Context) error {
		return s.repo.UpsertContact(ctx, stored)
	})
	return in, true
}

// DeleteContact removes a contact permanently.
func (s *Session) DeleteContact(id string) {
	for i := range s.Contacts {
		if s.Contacts[i].ID == id {
			s.Contacts = append(s.Contacts[:i], s.Contacts[i+1:]...)
			break
		}
	}
	delete(s.dismissed, id)
	s.persist("delete contact", func(ctx context.Context) error {
		return s.repo.DeleteContact(ctx, id)
	})
}

// ImportContacts turns selected CSV rows into cold contacts. Last contact
// defaults to the connection date when the file has one, otherwise today.
func (s *Session) ImportContacts(rows []importer.Row) int {
	if len(rows) == 0 {
		return 0
	}
	now := s.now()
	today := model.FormatDate(now)
	batch := make([]model.Contact, 0, len(rows))
	for _, row := range rows {
		lastContact := row.ConnectedOn
		if lastContact == "" {
			lastContact = today
		}
		batch = append(batch, model.Contact{
			ID:          uuid.NewString(),
			Name:        row.Name,
			Company:     row.Company,
			Notes:       row.Notes,
			Warmth:      model.WarmthCold,
			Seniority:   row.Seniority,
			LastContact: lastContact,
			CreatedAt:   now,
		})
	}
	s.Contacts = append(batch, s.Contacts...)

	stored := make([]storage.Contact, 0, len(batch))
	for _, c := range batch {
		stored = append(stored, contactToStorage(c))
	}
	s.persist("import contacts", func(ctx context.Context) error {
		return s.repo.ImportContacts(ctx, stored)
	})
	return len(batch)
}

// AutoDetectSeniority infers a rank from the notes of every unranked contact.
// It returns how many contacts were classified and how many stayed unset.
func (s *Session) AutoDetectSeniority() (detected, unset int) {
	for i := range s.Contacts {
		if s.Contacts[i].Seniority != model.SeniorityUnset {
			continue
		}
		inferred := model.InferSeniority(s.Contacts[i].Notes)
		if inferred == model.SeniorityUnset {
			unset++
			continue
		}
		s.Contacts[i].Seniority = inferred
		detected++
		stored := contactToStorage(s.Contacts[i])
		s.persist("update seniority", func(ctx context.Context) error {
			return s.repo.UpsertContact(ctx, stored)
		})
	}
	return detected, unset
}

// AdjustGoal moves the weekly goal in steps, never below five points.
func (s *Session) AdjustGoal(delta int) int {
	goal := s.Goal + delta
	if goal < 5 {
		goal = 5
	}
	if goal == s.Goal {
		return s.Goal
	}
	s.Goal = goal
	s.persist("set weekly goal", func(ctx context.Context) error {
		return s.repo.SetWeeklyGoal(ctx, goal)
	})
	return s.Goal
}

// MarkOverdueDone logs a follow-up rep against the contact and clears its
// follow-up date.
func (s *Session) MarkOverdueDone(contactID string) (model.ActivityEntry, bool) {
	contact, ok := s.contactByID(contactID)
	if !ok {
		return model.ActivityEntry{}, false
	}
	entry, ok := s.LogActivity("follow_up", contact.Name)
	if !ok {
		return model.ActivityEntry{}, false
	}
	s.touchContact(contactID, s.Today(), true)
	return entry, true
}

// CoffeeContacted logs a coffee chat against the contact and stamps it as
// reached today. Any scheduled follow-up stays in place.
func (s *Session) CoffeeContacted(contactID string) (model.ActivityEntry, bool) {
	contact, ok := s.contactByID(contactID)
	if !ok {
		return model.ActivityEntry{}, false
	}
	entry, ok := s.LogActivity("coffee_chat", contact.Name)
	if !ok {
		return model.ActivityEntry{}, false
	}
	s.touchContact(contactID, s.Today(), false)
	return entry, true
}

// ResetAll wipes the log, the contacts and the goal back to a fresh state.
// Safe to call repeatedly.
func (s *Session) ResetAll() {
	s.Log = nil
	s.Contacts = nil
	s.Goal = model.DefaultWeeklyGoal
	s.dismissed = make(map[string]bool)
	s.persist("reset", func(ctx context.Context) error {
		if err := s.repo.ClearActivityLog(ctx); err != nil {
			return err
		}
		if err := s.repo.ClearContacts(ctx); err != nil {
			return err
		}
		return s.repo.SetWeeklyGoal(ctx, model.DefaultWeeklyGoal)
	})
}

func (s *Session) contactByID(id string) (model.Contact, bool) {
	for _, c := range s.Contacts {
		if c.ID == id {
			return c, true
		}
	}
	return model.Contact{}, false
}

// touchContact sets last contact and optionally clears the follow-up date,
// then persists the contact.
func (s *Session) touchContact(id, lastContact string, clearFollowUp bool) {
	for i := range s.Contacts {
		if s.Contacts[i].ID != id {
			continue
		}
		s.Contacts[i].LastContact = lastContact
		if clearFollowUp {
			s.Contacts[i].FollowUpDate = ""
		}
		stored := contactToStorage(s.Contacts[i])
		s.persist("touch contact", func(ctx context.Context) error {
			return s.repo.UpsertContact(ctx, stored)
		})
		return
	}
}

func (s *Session) persist(op string, fn func(ctx context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.logger.Warn("persist failed", "op", op, "err", err)
		}
	}()
}
