package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/board"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// boardCheckMessage is one round-trip on the live board channel. The client
// re-sends its tier, selection and grid after every edit; the server answers
// with the current violation list so the UI can flag cells as the player
// drags cards around, without a request per cell.
type boardCheckMessage struct {
	Type string `json:"type"`

	Tier      string     `json:"tier,omitempty"`
	Variant   *bool      `json:"variant,omitempty"`
	Selection []string   `json:"selection,omitempty"`
	Grid      [][]string `json:"grid,omitempty"`

	Ready               bool              `json:"ready,omitempty"`
	SelectionViolations []board.Violation `json:"selection_violations,omitempty"`
	PlacementViolations []board.Violation `json:"placement_violations,omitempty"`
	Error               string            `json:"error,omitempty"`
}

func (api *API) handleBoardSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var msg boardCheckMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		reply := api.checkBoard(msg)
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func (api *API) checkBoard(msg boardCheckMessage) boardCheckMessage {
	reply := boardCheckMessage{Type: "result"}

	tier, err := card.NormalizeTier(msg.Tier)
	if err != nil {
		reply.Type = "error"
		reply.Error = err.Error()
		return reply
	}
	placement, ok := board.PlacementFromGrid(msg.Grid)
	if !ok {
		reply.Type = "error"
		reply.Error = "grid must be 5 rows of 5 cells"
		return reply
	}

	variant := api.App.variantOr(msg.Variant)
	sel := board.Selection(msg.Selection)
	reply.SelectionViolations = api.App.Validator.ValidateSelection(sel, board.RequiredCounts(tier, variant))
	reply.PlacementViolations = api.App.Validator.ValidatePlacement(placement, sel, board.WildModeFor(tier, variant))
	reply.Ready = len(reply.SelectionViolations) == 0 && len(reply.PlacementViolations) == 0
	return reply
}
