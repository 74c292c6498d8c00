package restaurant

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// Customers lists customers. A nil sort defaults to most orders first.
func (s *Service) Customers(ctx context.Context, q tabular.Query) (tabular.Result[Customer], error) {
	store, err := s.store()
	if err != nil {
		return tabular.Result[Customer]{}, err
	}
	customers, err := store.Customers(ctx)
	if err != nil {
		return tabular.Result[Customer]{}, err
	}
	if q.Sort == nil {
		q.Sort = &tabular.SortRule{Key: FieldTotalOrders, Direction: tabular.Descending}
	}
	return run(ctx, s, "customers", customers, CustomerSchema(), q), nil
}

// CustomerDetail returns a customer with their favourite items.
func (s *Service) CustomerDetail(ctx context.Context, id string) (CustomerDetail, error) {
	store, err := s.store()
	if err != nil {
		return CustomerDetail{}, err
	}
	customers, err := store.Customers(ctx)
	if err != nil {
		return CustomerDetail{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return CustomerDetail{Customer: c, Favorites: FavoriteItems(c)}, nil
		}
	}
	return CustomerDetail{}, fmt.Errorf("%w: customer %s", ErrNotFound, id)
}

// PromotionView is a promotion with its status evaluated at query time.
type PromotionView struct {
	Promotion
	Status PromotionStatus `json:"status"`
}

// Promotions lists promotions with derived status.
func (s *Service) Promotions(ctx context.Context, q tabular.Query) (tabular.Result[PromotionView], error) {
	store, err := s.store()
	if err != nil {
		return tabular.Result[PromotionView]{}, err
	}
	promos, err := store.Promotions(ctx)
	if err != nil {
		return tabular.Result[PromotionView]{}, err
	}
	now := s.Now()
	result := run(ctx, s, "promotions", promos, PromotionSchema(now), q)
	views := make([]PromotionView, len(result.Rows))
	for i, p := range result.Rows {
		views[i] = PromotionView{Promotion: p, Status: PromotionStatusAt(p, now)}
	}
	return tabular.Result[PromotionView]{
		Rows:    views,
		Total:   result.Total,
		Matched: result.Matched,
		Page:    result.Page,
	}, nil
}

// CreatePromotion validates the form and lists the new promotion first.
func (s *Service) CreatePromotion(ctx context.Context, in PromotionInput) (PromotionView, error) {
	store, err := s.store()
	if err != nil {
		return PromotionView{}, err
	}
	in.Code = strings.TrimSpace(in.Code)
	if err := s.validate(ctx, FormPromotion, in); err != nil {
		return PromotionView{}, err
	}
	start, okStart := tabular.ParseTime(in.StartDate)
	end, okEnd := tabular.ParseTime(in.EndDate)
	if !okStart || !okEnd {
		return PromotionView{}, s.reject(ctx, invalid(FormPromotion, "start and end dates must be valid dates"))
	}
	if end.Before(start) {
		return PromotionView{}, s.reject(ctx, invalid(FormPromotion, "end date must not be before start date"))
	}
	if in.Type == DiscountPercentage && in.Value > 100 {
		return PromotionView{}, s.reject(ctx, invalid(FormPromotion, "percentage discount cannot exceed 100"))
	}
	existing, err := store.Promotions(ctx)
	if err != nil {
		return PromotionView{}, err
	}
	for _, p := range existing {
		if strings.EqualFold(p.Code, in.Code) {
			return PromotionView{}, s.reject(ctx, invalid(FormPromotion, fmt.Sprintf("code %s is already in use", in.Code)))
		}
	}
	promo, err := store.CreatePromotion(ctx, Promotion{
		ID:            "P-" + s.opts.NewID(),
		Code:          in.Code,
		Type:          in.Type,
		Value:         in.Value,
		StartDate:     start,
		EndDate:       end,
		MinOrder:      in.MinOrder,
		FirstTimeUser: in.FirstTimeUser,
	})
	if err != nil {
		return PromotionView{}, err
	}
	view := PromotionView{Promotion: promo, Status: PromotionStatusAt(promo, s.Now())}
	s.success(ctx, "Promotion created", fmt.Sprintf("Promotion %s is %s.", promo.Code, strings.ToLower(string(view.Status))), "promotion/"+promo.ID)
	s.mutated(ctx, "restaurant.promotion.create", "promotion", promo.ID, map[string]any{
		"code":   promo.Code,
		"status": string(view.Status),
	})
	return view, nil
}

// RequestPromotionDelete raises a confirm notice. Nothing is removed until
// DeletePromotion runs.
func (s *Service) RequestPromotionDelete(ctx context.Context, id string) (Notice, error) {
	store, err := s.store()
	if err != nil {
		return Notice{}, err
	}
	promos, err := store.Promotions(ctx)
	if err != nil {
		return Notice{}, err
	}
	for _, p := range promos {
		if p.ID != id {
			continue
		}
		notice := Notice{
			Kind:    NoticeConfirm,
			Title:   "Delete " + p.Code,
			Message: "Are you sure you want to permanently delete this promotion?",
			Subject: "promotion/" + p.ID,
			Action:  "restaurant.promotion.delete",
			At:      s.Now(),
		}
		s.notify(ctx, notice)
		return notice, nil
	}
	return Notice{}, fmt.Errorf("%w: promotion %s", ErrNotFound, id)
}

// DeletePromotion removes a promotion.
func (s *Service) DeletePromotion(ctx context.Context, id string) (Promotion, error) {
	store, err := s.store()
	if err != nil {
		return Promotion{}, err
	}
	if id == "" {
		return Promotion{}, errMissingID
	}
	promo, err := store.DeletePromotion(ctx, id)
	if err != nil {
		return Promotion{}, err
	}
	s.success(ctx, "Promotion deleted", fmt.Sprintf("%s has been removed.", promo.Code), "promotion/"+promo.ID)
	s.mutated(ctx, "restaurant.promotion.delete", "promotion", promo.ID, map[string]any{"code": promo.Code})
	return promo, nil
}
