// Package teamsvc manages team members: accounts, activation, push tokens and their derived assignments.
package teamsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	teamdto "edu_crm/internal/api/team/dto"
	teammodels "edu_crm/internal/api/team/models"
	"edu_crm/internal/auth"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssignedSource is a collection whose records can be assigned to team members.
type AssignedSource interface {
	EntityType() string
	AssignedTo(ctx context.Context, memberID primitive.ObjectID) ([]basemodels.AssignedRef, error)
	UnassignAll(ctx context.Context, memberID primitive.ObjectID) (int64, error)
}

// LeadEntityType names the source whose records populate Team.AssignedLeads.
const LeadEntityType = "form"

// TeamService handles team member accounts.
type TeamService struct {
	basesvc.EntityService[teammodels.Team]
	sources []AssignedSource
}

// NewTeamService builds the service on the registered teams collection.
func NewTeamService(attachments *storage.Attachments) (*TeamService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Teams)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Teams, common.ErrNotFound)
	}
	return NewTeamServiceWith(basesvc.NewBaseServiceMongo[teammodels.Team](coll), attachments), nil
}

// NewTeamServiceWith builds the service on any repository.
func NewTeamServiceWith(repo basesvc.BaseServiceMongo[teammodels.Team], attachments *storage.Attachments) *TeamService {
	return &TeamService{EntityService: basesvc.EntityService[teammodels.Team]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "avatar", Folder: "avatars", Kind: storage.KindImage}},
		SearchFields: []string{"name", "email", "phone"},
	}}
}

// AddSources registers the collections consulted for derived assignments and unassigned on member deletion.
func (s *TeamService) AddSources(sources ...AssignedSource) {
	s.sources = append(s.sources, sources...)
}

func (s *TeamService) Create(ctx context.Context, actor *access.Identity, input *teamdto.TeamCreateInput, files basemodels.Files) (teammodels.Team, error) {
	email := utility.NormalizeEmail(input.Email)
	if exists, err := s.Repo.DocumentExists(ctx, bson.M{"email": email}); err != nil {
		return teammodels.Team{}, err
	} else if exists {
		return teammodels.Team{}, common.WithDetails(common.ErrDuplicate, "email")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return teammodels.Team{}, common.WithDetails(common.ErrInvalidInput, "password")
	}
	member := teammodels.Team{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		Role:         input.Role,
		PasswordHash: hash,
		IsActive:     true,
		Tracking:     basemodels.Tracking{CreatedBy: actor.Actor()},
	}
	created, err := s.CreateWithFiles(ctx, member, files, func(m *teammodels.Team, urls map[string]string) {
		m.Avatar = urls["avatar"]
	})
	if err != nil {
		return teammodels.Team{}, err
	}
	logger.Audit("team.create", actor.IDHex()).WithField("member", created.ID.Hex()).Info("team member created")
	return created, nil
}

func (s *TeamService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[teammodels.Team], error) {
	filter := s.ListFilter(basemodels.ListQuery{Search: q.Search, From: q.From, To: q.To})
	if role := q.Get("role"); role != "" {
		filter["role"] = role
	}
	if active := q.Get("isActive"); active != "" {
		filter["isActive"] = active == "true"
	}
	return s.Page(ctx, filter, q)
}

// Get returns the member with the leads currently assigned to them.
func (s *TeamService) Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (teammodels.Team, error) {
	member, err := s.Repo.FindOneById(ctx, id)
	if err != nil {
		return teammodels.Team{}, err
	}
	member.AssignedLeads = []basemodels.AssignedRef{}
	for _, src := range s.sources {
		if src.EntityType() != LeadEntityType {
			continue
		}
		refs, err := src.AssignedTo(ctx, id)
		if err != nil {
			return teammodels.Team{}, err
		}
		member.AssignedLeads = refs
	}
	return member, nil
}

// Assigned returns the member's assigned records grouped by entity type.
func (s *TeamService) Assigned(ctx context.Context, id primitive.ObjectID) (map[string][]basemodels.AssignedRef, error) {
	if _, err := s.Repo.FindOneById(ctx, id); err != nil {
		return nil, err
	}
	out := make(map[string][]basemodels.AssignedRef, len(s.sources))
	for _, src := range s.sources {
		refs, err := src.AssignedTo(ctx, id)
		if err != nil {
			return nil, err
		}
		out[src.EntityType()] = refs
	}
	return out, nil
}

func (s *TeamService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *teamdto.TeamUpdateInput, files basemodels.Files) (teammodels.Team, error) {
	set := utility.CompactSet(bson.M{
		"name":  strings.TrimSpace(input.Name),
		"phone": strings.TrimSpace(input.Phone),
		"role":  input.Role,
	})
	if input.Email != "" {
		email := utility.NormalizeEmail(input.Email)
		taken, err := s.Repo.DocumentExists(ctx, bson.M{"email": email, "_id": bson.M{"$ne": id}})
		if err != nil {
			return teammodels.Team{}, err
		}
		if taken {
			return teammodels.Team{}, common.WithDetails(common.ErrDuplicate, "email")
		}
		set["email"] = email
	}
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return teammodels.Team{}, common.WithDetails(common.ErrInvalidInput, "password")
		}
		set["passwordHash"] = hash
	}
	if actor != nil {
		set["updatedBy"] = actor.Actor()
	}
	return s.UpdateWithFiles(ctx, id, nil, &basesvc.UpdateData{Set: set}, files)
}

// SetActive activates or deactivates a member. Deactivated members cannot log in or be assigned.
func (s *TeamService) SetActive(ctx context.Context, actor *access.Identity, id primitive.ObjectID, active bool) (teammodels.Team, error) {
	if actor != nil && actor.ID == id && !active {
		return teammodels.Team{}, common.WithDetails(common.ErrInvalidOperation, "cannot deactivate yourself")
	}
	set := bson.M{"isActive": active}
	if actor != nil {
		set["updatedBy"] = actor.Actor()
	}
	updated, err := s.Repo.UpdateById(ctx, id, set)
	if err != nil {
		return teammodels.Team{}, err
	}
	logger.Audit("team.status", actor.IDHex()).WithFields(map[string]interface{}{
		"member": id.Hex(), "isActive": active,
	}).Info("team member status changed")
	return updated, nil
}

// Delete removes the member, unassigns their records and deletes their avatar.
func (s *TeamService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if actor != nil && actor.ID == id {
		return common.WithDetails(common.ErrInvalidOperation, "cannot delete yourself")
	}
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	for _, src := range s.sources {
		n, err := src.UnassignAll(ctx, id)
		if err != nil {
			logger.WithModule("team").WithError(err).WithField("entity", src.EntityType()).Error("unassign after member deletion failed")
			continue
		}
		if n > 0 {
			logger.WithModule("team").WithFields(map[string]interface{}{
				"entity": src.EntityType(), "count": n, "member": id.Hex(),
			}).Info("records unassigned after member deletion")
		}
	}
	logger.Audit("team.delete", actor.IDHex()).WithField("member", id.Hex()).Info("team member deleted")
	return nil
}

// ResolveMember re-reads the member for strict routes.
func (s *TeamService) ResolveMember(ctx context.Context, id primitive.ObjectID) (*access.Identity, error) {
	member, err := s.Repo.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, common.ErrAccountDisabled
	}
	return IdentityOf(member), nil
}

// IdentityOf converts a member into the caller identity carried by tokens.
func IdentityOf(member teammodels.Team) *access.Identity {
	return &access.Identity{ID: member.ID, Email: member.Email, Name: member.Name, Role: member.Role}
}

// FindAssignee returns the active member with email: ErrNotFound when absent, ErrAssigneeInactive when deactivated.
func (s *TeamService) FindAssignee(ctx context.Context, email string) (teammodels.Team, error) {
	member, err := s.Repo.FindOne(ctx, bson.M{"email": utility.NormalizeEmail(email)}, nil)
	if err != nil {
		if basesvc.IsNotFound(err) {
			return teammodels.Team{}, common.WithDetails(common.ErrNotFound, "assignee "+email)
		}
		return teammodels.Team{}, err
	}
	if !member.IsActive {
		return teammodels.Team{}, common.ErrAssigneeInactive
	}
	return member, nil
}

// ActiveByRoles lists active members holding any of roles (all roles when empty).
func (s *TeamService) ActiveByRoles(ctx context.Context, roles ...string) ([]teammodels.Team, error) {
	filter := bson.M{"isActive": true}
	if len(roles) > 0 {
		filter["role"] = bson.M{"$in": roles}
	}
	return s.Repo.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// MemberIDs returns the ids of active members holding any of roles (all members when empty).
func (s *TeamService) MemberIDs(ctx context.Context, roles ...string) ([]primitive.ObjectID, error) {
	members, err := s.ActiveByRoles(ctx, roles...)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// Authenticate checks credentials and stamps lastLoginAt.
func (s *TeamService) Authenticate(ctx context.Context, email, password string) (teammodels.Team, error) {
	member, err := s.Repo.FindOne(ctx, bson.M{"email": utility.NormalizeEmail(email)}, nil)
	if err != nil {
		if basesvc.IsNotFound(err) {
			return teammodels.Team{}, common.ErrInvalidCredentials
		}
		return teammodels.Team{}, err
	}
	if auth.ComparePassword(member.PasswordHash, password) != nil {
		return teammodels.Team{}, common.ErrInvalidCredentials
	}
	if !member.IsActive {
		return teammodels.Team{}, common.ErrAccountDisabled
	}
	if updated, err := s.Repo.UpdateById(ctx, member.ID, bson.M{"lastLoginAt": time.Now().UnixMilli()}); err == nil {
		member = updated
	}
	return member, nil
}

// ChangePassword replaces the password after verifying the current one.
func (s *TeamService) ChangePassword(ctx context.Context, id primitive.ObjectID, current, next string) error {
	member, err := s.Repo.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if auth.ComparePassword(member.PasswordHash, current) != nil {
		return common.ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return common.WithDetails(common.ErrInvalidInput, "password")
	}
	_, err = s.Repo.UpdateById(ctx, id, bson.M{"passwordHash": hash})
	return err
}

// AddPushToken registers a device token for the member.
func (s *TeamService) AddPushToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := s.Repo.UpdateById(ctx, id, bson.M{"$addToSet": bson.M{"pushTokens": token}})
	return err
}

// RemovePushToken unregisters a device token for the member.
func (s *TeamService) RemovePushToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := s.Repo.UpdateById(ctx, id, bson.M{"$pull": bson.M{"pushTokens": token}})
	return err
}

// PushTokens returns the device tokens of the given members.
func (s *TeamService) PushTokens(ctx context.Context, ids []primitive.ObjectID) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	members, err := s.Repo.Find(ctx, bson.M{"_id": bson.M{"$in": ids}, "isActive": true}, nil)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, m := range members {
		tokens = append(tokens, m.PushTokens...)
	}
	return tokens, nil
}

// PrunePushTokens removes tokens the push provider reported as unregistered.
func (s *TeamService) PrunePushTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	_, err := s.Repo.UpdateMany(ctx, bson.M{"pushTokens": bson.M{"$in": tokens}},
		bson.M{"$pull": bson.M{"pushTokens": bson.M{"$in": tokens}}})
	return err
}

// EnsureAdmin creates an active admin with the given credentials unless an admin already exists.
func (s *TeamService) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	if email == "" || password == "" {
		return false, common.WithDetails(common.ErrRequiredField, "admin email and password")
	}
	exists, err := s.Repo.DocumentExists(ctx, bson.M{"role": access.RoleAdmin})
	if err != nil || exists {
		return false, err
	}
	if name == "" {
		name = "Administrator"
	}
	_, err = s.Create(ctx, nil, &teamdto.TeamCreateInput{
		Name: name, Email: email, Role: access.RoleAdmin, Password: password,
	}, nil)
	if err != nil {
		return false, err
	}
	return true, nil
}
