package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
)

// Handlers exposes HTTP endpoints backed by shared commands.
type Handlers struct {
	AdvanceOrder    gocommand.Commander[commands.AdvanceOrderInput]
	SaveMenuItem    gocommand.Commander[restaurant.MenuItemInput]
	ToggleMenuItem  gocommand.Commander[commands.ToggleMenuItemInput]
	ReceiveStock    gocommand.Commander[restaurant.StockReceipt]
	CreatePromotion gocommand.Commander[restaurant.PromotionInput]
	DeletePromotion gocommand.Commander[commands.DeleteInput]
	SaveStaff       gocommand.Commander[restaurant.StaffInput]
	DeleteStaff     gocommand.Commander[commands.DeleteInput]
	SaveRole        gocommand.Commander[restaurant.RoleInput]
	DeleteRole      gocommand.Commander[commands.DeleteInput]
	SaveSettings    gocommand.Commander[restaurant.Settings]
}

func (h *Handlers) HandleAdvanceOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	if err := h.AdvanceOrder.Execute(r.Context(), commands.AdvanceOrderInput{OrderID: orderID}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleSaveMenuItem(w http.ResponseWriter, r *http.Request) {
	var payload restaurant.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.SaveMenuItem.Execute(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(savedStatus(payload.ID))
}

func (h *Handlers) HandleToggleMenuItem(w http.ResponseWriter, r *http.Request, itemID string) {
	if err := h.ToggleMenuItem.Execute(r.Context(), commands.ToggleMenuItemInput{ItemID: itemID}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleReceiveStock(w http.ResponseWriter, r *http.Request, itemID string) {
	var payload restaurant.StockReceipt
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.ItemID = itemID
	if err := h.ReceiveStock.Execute(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleCreatePromotion(w http.ResponseWriter, r *http.Request) {
	var payload restaurant.PromotionInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.CreatePromotion.Execute(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleDeletePromotion(w http.ResponseWriter, r *http.Request, id string) {
	handleDelete(w, r, h.DeletePromotion, id)
}

func (h *Handlers) HandleSaveStaff(w http.ResponseWriter, r *http.Request) {
	var payload restaurant.StaffInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.SaveStaff.Execute(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(savedStatus(payload.ID))
}

func (h *Handlers) HandleDeleteStaff(w http.ResponseWriter, r *http.Request, id string) {
	handleDelete(w, r, h.DeleteStaff, id)
}

func (h *Handlers) HandleSaveRole(w http.ResponseWriter, r *http.Request) {
	var payload restaurant.RoleInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.SaveRole.Execute(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(savedStatus(payload.ID))
}

func (h *Handlers) HandleDeleteRole(w http.ResponseWriter, r *http.Request, id string) {
	handleDelete(w, r, h.DeleteRole, id)
}

func (h *Handlers) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var payload restaurant.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.SaveSettings.Execute(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// handleDelete runs the two step flow. Without ?confirm=true only the
// confirmation notice is raised and 202 is returned.
func handleDelete(w http.ResponseWriter, r *http.Request, cmd gocommand.Commander[commands.DeleteInput], id string) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if err := cmd.Execute(r.Context(), commands.DeleteInput{ID: id, Confirmed: confirmed}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(DeleteStatus(confirmed))
}

// DeleteStatus is 204 once a delete is confirmed, 202 while it awaits confirmation.
func DeleteStatus(confirmed bool) int {
	if confirmed {
		return http.StatusNoContent
	}
	return http.StatusAccepted
}

func savedStatus(id string) int {
	if id == "" {
		return http.StatusCreated
	}
	return http.StatusOK
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), StatusFor(err))
}
