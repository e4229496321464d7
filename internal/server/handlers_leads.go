package server

import (
	"net/http"

	"github.com/jonathan/staffsync/internal/types"
)

// leadResponse augments a lead with its derived fields: the pipeline stage
// label for the step index and the payment status computed from amounts.
type leadResponse struct {
	types.EmployerLead
	Stage                string              `json:"stage"`
	DerivedPaymentStatus types.PaymentStatus `json:"derivedPaymentStatus"`
}

func toLeadResponse(lead types.EmployerLead) leadResponse {
	return leadResponse{
		EmployerLead:         lead,
		Stage:                lead.Stage(),
		DerivedPaymentStatus: lead.PaymentDetails.DerivedStatus(),
	}
}

// handleListLeads lists all employer leads.
func (s *Server) handleListLeads(w http.ResponseWriter, _ *http.Request) {
	leads := s.leads.List()
	out := make([]leadResponse, len(leads))
	for i, lead := range leads {
		out[i] = toLeadResponse(lead)
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleGetLead returns a single employer lead.
func (s *Server) handleGetLead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	lead, ok := s.leads.Get(id)
	if !ok {
		err := &ErrNotFound{Resource: "lead", ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, toLeadResponse(lead))
}
