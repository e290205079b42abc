package session

import (
	"github.com/sandeepkv93/repsd/internal/model"
	"github.com/sandeepkv93/repsd/internal/storage"
)

func entryToStorage(in model.ActivityEntry) storage.ActivityEntry {
	return storage.ActivityEntry{
		ID:          in.ID,
		ActivityID:  in.ActivityID,
		Name:        in.Name,
		Emoji:       in.Emoji,
		Points:      in.Points,
		Tier:        in.Tier,
		Date:        in.Date,
		Timestamp:   in.Timestamp,
		ContactName: in.ContactName,
	}
}

func entryToModel(in storage.ActivityEntry) model.ActivityEntry {
	return model.ActivityEntry{
		ID:          in.ID,
		ActivityID:  in.ActivityID,
		Name:        in.Name,
		Emoji:       in.Emoji,
		Points:      in.Points,
		Tier:        in.Tier,
		Date:        in.Date,
		Timestamp:   in.Timestamp,
		ContactName: in.ContactName,
	}
}

func entriesToModel(in []storage.ActivityEntry) []model.ActivityEntry {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.ActivityEntry, 0, len(in))
	for _, e := range in {
		out = append(out, entryToModel(e))
	}
	return out
}

func contactToStorage(in model.Contact) storage.Contact {
	return storage.Contact{
		ID:           in.ID,
		Name:         in.Name,
		Company:      in.Company,
		Notes:        in.Notes,
		Warmth:       int(in.Warmth),
		Seniority:    int(in.Seniority),
		LastContact:  in.LastContact,
		FollowUpDate: in.FollowUpDate,
		CreatedAt:    in.CreatedAt,
	}
}

func contactToModel(in storage.Contact) model.Contact {
	return model.Contact{
		ID:           in.ID,
		Name:         in.Name,
		Company:      in.Company,
		Notes:        in.Notes,
		Warmth:       model.Warmth(in.Warmth),
		Seniority:    model.Seniority(in.Seniority),
		LastContact:  in.LastContact,
		FollowUpDate: in.FollowUpDate,
		CreatedAt:    in.CreatedAt,
	}
}

func contactsToModel(in []storage.Contact) []model.Contact {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Contact, 0, len(in))
	for _, c := range in {
		out = append(out, contactToModel(c))
	}
	return out
}
