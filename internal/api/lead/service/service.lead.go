// Package leadsvc implements the assignment and visibility rules shared by leads, enrollments and
// intern applications.
package leadsvc

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	notificationsvc "edu_crm/internal/api/notification/service"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/common"
	"edu_crm/internal/logger"
	"edu_crm/internal/mail"
	"edu_crm/internal/notification"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mailTimeout = 15 * time.Second

// Record is an assignable document.
type Record interface {
	AssignmentInfo() basemodels.Assignment
	RecordID() primitive.ObjectID
	Ref() basemodels.AssignedRef
}

// Service holds the behaviour common to assignable collections. Domain services embed it and add
// Create, List and Update for their own inputs.
type Service[T Record] struct {
	basesvc.EntityService[T]

	Entity string        // entity type used in notifications and assignment lookups
	Label  string        // human name used in messages
	Policy access.Policy // auto-assign, scope and assigner roles

	Team     *teamsvc.TeamService
	Notifier *notificationsvc.NotificationService
	Mailer   *mail.Service
	LinkBase string // frontend URL used in assignment emails

	// NotifyUnassigned fans out a new_lead notification to admins when a record is created unassigned.
	NotifyUnassigned bool

	inflight sync.WaitGroup
}

func (s *Service[T]) EntityType() string { return s.Entity }

// Scope returns the visibility filter of the caller.
func (s *Service[T]) Scope(actor *access.Identity) bson.M {
	if actor == nil {
		return bson.M{}
	}
	return s.Policy.VisibilityFilter(actor)
}

// Stamp applies the creator's auto-assignment and tracking to a new record.
func (s *Service[T]) Stamp(actor *access.Identity, a *basemodels.Assignment, t *basemodels.Tracking) {
	if actor == nil {
		return
	}
	*a = s.Policy.AutoAssignment(actor)
	t.CreatedBy = actor.Actor()
}

// CreateRecord stores a stamped record with its attachments and runs the creation side effects.
func (s *Service[T]) CreateRecord(ctx context.Context, actor *access.Identity, model T, files basemodels.Files, apply func(*T, map[string]string)) (T, error) {
	created, err := s.CreateWithFiles(ctx, model, files, apply)
	if err != nil {
		return created, err
	}
	log := logger.WithModule(s.Entity).WithField("id", created.RecordID().Hex())
	if a := created.AssignmentInfo(); a.AssignedTo != nil {
		log.WithField("assignedTo", a.AssignedTo.Hex()).Info("record created and auto-assigned")
	} else if s.NotifyUnassigned && s.Notifier != nil {
		id := created.RecordID()
		ref := created.Ref()
		if _, err := s.Notifier.NotifyRoles(ctx, access.Admins, notificationsvc.Draft{
			Title:      "New " + s.Label,
			Body:       fmt.Sprintf("%s submitted a new %s", ref.Name, s.Label),
			Type:       notification.TypeNewLead,
			EntityType: s.Entity,
			EntityID:   &id,
		}); err != nil {
			log.WithError(err).Warn("new record notification failed")
		}
	}
	return created, nil
}

// ListRecords lists the records visible to the caller. extra is merged into the shared filters.
func (s *Service[T]) ListRecords(ctx context.Context, actor *access.Identity, q basemodels.ListQuery, extra bson.M) (*basemodels.PaginateResult[T], error) {
	filter := s.ListFilter(q)
	for k, v := range extra {
		filter[k] = v
	}
	switch q.AssignedTo {
	case "":
	case "unassigned":
		filter["assignedTo"] = nil
	default:
		id, err := utility.ParseObjectID(q.AssignedTo)
		if err != nil {
			return nil, err
		}
		filter["assignedTo"] = id
	}
	return s.Page(ctx, access.Merge(filter, s.Scope(actor)), q)
}

// Get returns the record when it is visible to the caller.
func (s *Service[T]) Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (T, error) {
	return s.FindByID(ctx, id, s.Scope(actor))
}

// UpdateRecord applies set to a visible record. Replaced attachments are deleted after the update.
func (s *Service[T]) UpdateRecord(ctx context.Context, actor *access.Identity, id primitive.ObjectID, set bson.M, files basemodels.Files) (T, error) {
	set = utility.CompactSet(set)
	if actor != nil {
		set["updatedBy"] = actor.Actor()
	}
	return s.UpdateWithFiles(ctx, id, s.Scope(actor), &basesvc.UpdateData{Set: set}, files)
}

// UpdateStatus sets one enumerated status field. Unknown fields and values are rejected and leave the record unchanged.
func (s *Service[T]) UpdateStatus(ctx context.Context, actor *access.Identity, id primitive.ObjectID, field, value string) (T, error) {
	updated, err := s.SetStatus(ctx, id, s.Scope(actor), field, value, actor.Actor())
	if err != nil {
		return updated, err
	}
	logger.Audit(s.Entity+".status", actor.IDHex()).WithFields(map[string]interface{}{
		"id": id.Hex(), "field": field, "value": value,
	}).Info("status changed")
	return updated, nil
}

// Assign assigns the record to the active member with email, then notifies and emails the assignee.
func (s *Service[T]) Assign(ctx context.Context, actor *access.Identity, id primitive.ObjectID, email string) (T, error) {
	var zero T
	if !s.Policy.CanAssign(actor) {
		return zero, common.ErrForbidden
	}
	member, err := s.Team.FindAssignee(ctx, email)
	if err != nil {
		return zero, err
	}
	a := access.NewAssignment(member.ID, actor, time.Now())
	updated, err := s.Repo.UpdateById(ctx, id, bson.M{
		"assignedTo":     a.AssignedTo,
		"assignedBy":     a.AssignedBy,
		"assignedByName": a.AssignedByName,
		"assignedAt":     a.AssignedAt,
	})
	if err != nil {
		return zero, err
	}
	logger.Audit(s.Entity+".assign", actor.IDHex()).WithFields(map[string]interface{}{
		"id": id.Hex(), "assignee": member.ID.Hex(),
	}).Info("record assigned")

	ref := updated.Ref()
	if s.Notifier != nil {
		if _, err := s.Notifier.Notify(ctx, []primitive.ObjectID{member.ID}, notificationsvc.Draft{
			Title:      fmt.Sprintf("New %s assigned", s.Label),
			Body:       fmt.Sprintf("%s assigned %s to you", actor.Name, ref.Name),
			Type:       notification.AssignedType(s.Entity),
			EntityType: s.Entity,
			EntityID:   &id,
		}); err != nil {
			logger.WithModule(s.Entity).WithError(err).Warn("assignment notification failed")
		}
	}
	s.mailAssignee(member.Email, mail.AssignmentData{
		AssigneeName: member.Name,
		AssignedBy:   actor.Name,
		EntityLabel:  s.Label,
		RecordName:   ref.Name,
		Link:         s.link(id),
	})
	return updated, nil
}

func (s *Service[T]) link(id primitive.ObjectID) string {
	if s.LinkBase == "" {
		return ""
	}
	return strings.TrimRight(s.LinkBase, "/") + "/" + s.Entity + "/" + id.Hex()
}

// mailAssignee emails the assignee in the background. Failures are logged.
func (s *Service[T]) mailAssignee(to string, data mail.AssignmentData) {
	if s.Mailer == nil {
		return
	}
	s.inflight.Add(1)
	go utility.GoProtect(func() {
		defer s.inflight.Done()
		html, err := mail.Render("assignment.html", data)
		if err != nil {
			logger.WithModule(s.Entity).WithError(err).Error("could not render assignment email")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()
		_ = s.Mailer.Send(ctx, "", mail.Message{
			To:      []string{to},
			Subject: fmt.Sprintf("New %s assigned: %s", s.Label, data.RecordName),
			HTML:    html,
		})
	})
}

// Wait blocks until background emails have finished.
func (s *Service[T]) Wait() {
	s.inflight.Wait()
}

// AddRemark appends a remark to a visible record.
func (s *Service[T]) AddRemark(ctx context.Context, actor *access.Identity, id primitive.ObjectID, text string) (T, error) {
	remark := basemodels.Remark{Text: strings.TrimSpace(text), AddedAt: time.Now().UnixMilli()}
	if actor != nil {
		remark.AddedBy = *actor.Actor()
	}
	return s.Repo.UpdateOne(ctx, scoped(id, s.Scope(actor)), &basesvc.UpdateData{
		Push: map[string]interface{}{"remarks": remark},
	})
}

// Delete removes the record, then its attachments best-effort.
func (s *Service[T]) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit(s.Entity+".delete", actor.IDHex()).WithField("id", id.Hex()).Info("record deleted")
	return nil
}

// AssignedTo lists the records assigned to a member.
func (s *Service[T]) AssignedTo(ctx context.Context, memberID primitive.ObjectID) ([]basemodels.AssignedRef, error) {
	records, err := s.Repo.Find(ctx, bson.M{"assignedTo": memberID}, options.Find().SetSort(basesvc.NewestFirst))
	if err != nil {
		return nil, err
	}
	refs := make([]basemodels.AssignedRef, 0, len(records))
	for _, r := range records {
		refs = append(refs, r.Ref())
	}
	return refs, nil
}

// UnassignAll clears the assignment of every record assigned to a member.
func (s *Service[T]) UnassignAll(ctx context.Context, memberID primitive.ObjectID) (int64, error) {
	return s.Repo.UpdateMany(ctx, bson.M{"assignedTo": memberID}, &basesvc.UpdateData{
		Set:   map[string]interface{}{"assignedTo": nil},
		Unset: map[string]interface{}{"assignedBy": "", "assignedByName": "", "assignedAt": ""},
	})
}

// RemindFollowUps notifies the assignees of records whose nextFollowUpAt falls in [from, to).
func (s *Service[T]) RemindFollowUps(ctx context.Context, from, to time.Time) (int, error) {
	if s.Notifier == nil {
		return 0, nil
	}
	records, err := s.Repo.Find(ctx, bson.M{
		"nextFollowUpAt": bson.M{"$gte": from.UnixMilli(), "$lt": to.UnixMilli()},
		"assignedTo":     bson.M{"$ne": nil},
	}, nil)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, r := range records {
		a := r.AssignmentInfo()
		if a.AssignedTo == nil {
			continue
		}
		id := r.RecordID()
		if _, err := s.Notifier.Notify(ctx, []primitive.ObjectID{*a.AssignedTo}, notificationsvc.Draft{
			Title:      "Follow-up due today",
			Body:       fmt.Sprintf("Follow up with %s (%s)", r.Ref().Name, s.Label),
			Type:       notification.TypeFollowUpReminder,
			EntityType: s.Entity,
			EntityID:   &id,
		}); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// DueFollowUps sends the reminders for records due on the day of now.
func (s *Service[T]) DueFollowUps(ctx context.Context, now time.Time) (int, error) {
	from, to := utility.DayBounds(now)
	return s.RemindFollowUps(ctx, time.UnixMilli(from), time.UnixMilli(to))
}

func scoped(id primitive.ObjectID, scope bson.M) bson.M {
	return access.Merge(bson.M{"_id": id}, scope)
}
