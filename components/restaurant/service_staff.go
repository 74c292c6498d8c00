package restaurant

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// StaffView is a staff member with the resolved role name.
type StaffView struct {
	StaffMember
	Role string `json:"role"`
}

// Staff lists staff members. Search and sort can use the role name.
func (s *Service) Staff(ctx context.Context, q tabular.Query) (tabular.Result[StaffView], error) {
	store, err := s.store()
	if err != nil {
		return tabular.Result[StaffView]{}, err
	}
	staff, err := store.Staff(ctx)
	if err != nil {
		return tabular.Result[StaffView]{}, err
	}
	roles, err := store.Roles(ctx)
	if err != nil {
		return tabular.Result[StaffView]{}, err
	}
	result := run(ctx, s, "staff", staff, StaffSchema(roles), q)
	views := make([]StaffView, len(result.Rows))
	for i, m := range result.Rows {
		views[i] = StaffView{StaffMember: m, Role: RoleName(roles, m.RoleID)}
	}
	return tabular.Result[StaffView]{
		Rows:    views,
		Total:   result.Total,
		Matched: result.Matched,
		Page:    result.Page,
	}, nil
}

// SaveStaff adds a staff member when in.ID is empty, otherwise updates it.
func (s *Service) SaveStaff(ctx context.Context, in StaffInput) (StaffMember, error) {
	store, err := s.store()
	if err != nil {
		return StaffMember{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.RoleID == "" {
		return StaffMember{}, s.reject(ctx, invalid(FormStaff, "Please fill out all fields."))
	}
	if err := s.validate(ctx, FormStaff, in); err != nil {
		return StaffMember{}, err
	}
	roles, err := store.Roles(ctx)
	if err != nil {
		return StaffMember{}, err
	}
	if roleIndex(roles, in.RoleID) < 0 {
		return StaffMember{}, s.reject(ctx, invalid(FormStaff, fmt.Sprintf("role %s does not exist", in.RoleID)))
	}
	member := StaffMember{ID: in.ID, Name: in.Name, Email: in.Email, RoleID: in.RoleID}
	if member.ID == "" {
		member.ID = s.opts.NewID()
	} else {
		staff, err := store.Staff(ctx)
		if err != nil {
			return StaffMember{}, err
		}
		if !slices.ContainsFunc(staff, func(m StaffMember) bool { return m.ID == member.ID }) {
			return StaffMember{}, fmt.Errorf("staff %s: %w", member.ID, ErrNotFound)
		}
	}
	member, created, err := store.SaveStaff(ctx, member)
	if err != nil {
		return StaffMember{}, err
	}
	action, verb := "updated", "restaurant.staff.update"
	if created {
		action, verb = "added", "restaurant.staff.create"
	}
	s.success(ctx, "Staff saved", fmt.Sprintf("Staff member %s %s successfully.", member.Name, action), "staff/"+member.ID)
	s.mutated(ctx, verb, "staff_member", member.ID, map[string]any{"role_id": member.RoleID})
	return member, nil
}

// RequestStaffDelete raises a confirm notice for removing a staff member.
func (s *Service) RequestStaffDelete(ctx context.Context, id string) (Notice, error) {
	store, err := s.store()
	if err != nil {
		return Notice{}, err
	}
	staff, err := store.Staff(ctx)
	if err != nil {
		return Notice{}, err
	}
	for _, m := range staff {
		if m.ID != id {
			continue
		}
		notice := Notice{
			Kind:    NoticeConfirm,
			Title:   "Remove " + m.Name,
			Message: fmt.Sprintf("Are you sure you want to remove %s from the staff list?", m.Name),
			Subject: "staff/" + m.ID,
			Action:  "restaurant.staff.delete",
			At:      s.Now(),
		}
		s.notify(ctx, notice)
		return notice, nil
	}
	return Notice{}, fmt.Errorf("%w: staff member %s", ErrNotFound, id)
}

// DeleteStaff removes a staff member.
func (s *Service) DeleteStaff(ctx context.Context, id string) (StaffMember, error) {
	store, err := s.store()
	if err != nil {
		return StaffMember{}, err
	}
	if id == "" {
		return StaffMember{}, errMissingID
	}
	member, err := store.DeleteStaff(ctx, id)
	if err != nil {
		return StaffMember{}, err
	}
	s.success(ctx, "Staff removed", fmt.Sprintf("%s has been removed.", member.Name), "staff/"+member.ID)
	s.mutated(ctx, "restaurant.staff.delete", "staff_member", member.ID, nil)
	return member, nil
}

// Roles lists roles in stored order.
func (s *Service) Roles(ctx context.Context) ([]Role, error) {
	store, err := s.store()
	if err != nil {
		return nil, err
	}
	return store.Roles(ctx)
}

// PermissionMatrix builds the role x permission grid.
func (s *Service) PermissionMatrix(ctx context.Context) (PermissionMatrix, error) {
	roles, err := s.Roles(ctx)
	if err != nil {
		return PermissionMatrix{}, err
	}
	return BuildPermissionMatrix(roles), nil
}

// SaveRole creates a role when in.ID is empty, otherwise updates it. Access
// is stored sorted and deduplicated.
func (s *Service) SaveRole(ctx context.Context, in RoleInput) (Role, error) {
	store, err := s.store()
	if err != nil {
		return Role{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Role{}, s.reject(ctx, invalid(FormRole, "Role name cannot be empty."))
	}
	if err := s.validate(ctx, FormRole, in); err != nil {
		return Role{}, err
	}
	for _, p := range in.Access {
		if !validPermission(p) {
			return Role{}, s.reject(ctx, invalid(FormRole, fmt.Sprintf("unknown permission %q", p)))
		}
	}
	role := Role{ID: in.ID, Name: in.Name, Description: strings.TrimSpace(in.Description), Access: sortedAccess(in.Access)}
	if role.ID == "" {
		role.ID = s.opts.NewID()
	} else {
		roles, err := store.Roles(ctx)
		if err != nil {
			return Role{}, err
		}
		if roleIndex(roles, role.ID) < 0 {
			return Role{}, fmt.Errorf("role %s: %w", role.ID, ErrNotFound)
		}
	}
	role, created, err := store.SaveRole(ctx, role)
	if err != nil {
		return Role{}, err
	}
	action, verb := "updated", "restaurant.role.update"
	if created {
		action, verb = "created", "restaurant.role.create"
	}
	s.success(ctx, "Role saved", fmt.Sprintf("Role %q %s successfully.", role.Name, action), "role/"+role.ID)
	s.mutated(ctx, verb, "role", role.ID, map[string]any{"access": len(role.Access)})
	return role, nil
}

// RequestRoleDelete raises a confirm notice for removing a role.
func (s *Service) RequestRoleDelete(ctx context.Context, id string) (Notice, error) {
	roles, err := s.Roles(ctx)
	if err != nil {
		return Notice{}, err
	}
	for _, r := range roles {
		if r.ID != id {
			continue
		}
		notice := Notice{
			Kind:    NoticeConfirm,
			Title:   "Delete " + r.Name,
			Message: fmt.Sprintf("Are you sure you want to delete the role: %s? This cannot be undone.", r.Name),
			Subject: "role/" + r.ID,
			Action:  "restaurant.role.delete",
			At:      s.Now(),
		}
		s.notify(ctx, notice)
		return notice, nil
	}
	return Notice{}, fmt.Errorf("%w: role %s", ErrNotFound, id)
}

// DeleteRole removes a role. Staff holding it resolve to UnknownRole.
func (s *Service) DeleteRole(ctx context.Context, id string) (Role, error) {
	store, err := s.store()
	if err != nil {
		return Role{}, err
	}
	if id == "" {
		return Role{}, errMissingID
	}
	role, err := store.DeleteRole(ctx, id)
	if err != nil {
		return Role{}, err
	}
	s.success(ctx, "Role deleted", fmt.Sprintf("Role %q deleted successfully.", role.Name), "role/"+role.ID)
	s.mutated(ctx, "restaurant.role.delete", "role", role.ID, nil)
	return role, nil
}
