package farm

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type Action string

const (
	ActionSowSeeds      Action = "SOW_SEEDS"
	ActionWaterField    Action = "WATER_FIELD"
	ActionAddFertilizer Action = "ADD_FERTILIZER"
	ActionPestControl   Action = "PEST_CONTROL"
	ActionSoilPrep      Action = "SOIL_PREP"
	ActionHarvest       Action = "HARVEST"
)

// Actions lists the recognised action identifiers.
func Actions() []Action {
	return []Action{
		ActionSowSeeds, ActionWaterField, ActionAddFertilizer,
		ActionPestControl, ActionSoilPrep, ActionHarvest,
	}
}

// ActionResult reports what an action did. Unmet preconditions never
// error; they degrade to Applied=false plus a logged message.
type ActionResult struct {
	Applied bool    `json:"applied"`
	Message string  `json:"message"`
	Payout  float64 `json:"payout,omitempty"`
}

const (
	waterBoost      = 30
	fertilizerBoost = 20
	pestReduction   = 40
	tillBoost       = 10
	payoutPerUnit   = 10 // payout = cropHealthProxy × area × payoutPerUnit
)

// PerformAction applies one control action: numeric effect, log entry and
// a transient visual flag with its auto-clear timer. Unknown identifiers
// are ignored apart from the returned result.
func (f *Farm) PerformAction(action Action) ActionResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result ActionResult

	switch action {
	case ActionSowSeeds:
		f.state.Stage = StageSeeded
		f.state.GrowthProgress = 0
		result = ActionResult{Applied: true, Message: fmt.Sprintf("Sowed %s seeds", f.cfg.Crop)}
		f.setEffect(EffectSowing)

	case ActionWaterField:
		f.state.WaterLevel = clampBounded(f.state.WaterLevel+waterBoost, 0, 100)
		result = ActionResult{Applied: true, Message: "Irrigation system activated"}
		f.setEffect(EffectWatering)

	case ActionAddFertilizer:
		f.state.SoilHealth = clampBounded(f.state.SoilHealth+fertilizerBoost, 0, 100)
		result = ActionResult{Applied: true, Message: "Fertilizer applied"}
		f.setEffect(EffectFertilizing)

	case ActionPestControl:
		f.state.PestRisk = clampBounded(f.state.PestRisk-pestReduction, 0, 100)
		result = ActionResult{Applied: true, Message: "Pesticide sprayed"}
		f.setEffect(EffectPestControlling)

	case ActionSoilPrep:
		f.state.SoilHealth = clampBounded(f.state.SoilHealth+tillBoost, 0, 100)
		result = ActionResult{Applied: true, Message: "Tilled soil"}
		f.setEffect(EffectTilling)

	case ActionHarvest:
		return f.harvest()

	default:
		return ActionResult{Message: fmt.Sprintf("Unrecognised action: %s", action)}
	}

	f.refreshDerived()
	f.prependLog(string(action), result.Message)
	f.logger.Info("action performed", "action", action, "day", f.state.Day)
	return result
}

// harvest pays out at maturity and starts the next cycle. The log is
// truncated to the single harvest entry; every other action prepends and
// keeps history.
func (f *Farm) harvest() ActionResult {
	if f.state.Stage != StageMature {
		msg := "Not ready for harvest yet."
		f.prependLog(string(ActionHarvest), msg)
		f.logger.Info("harvest refused", "stage", f.state.Stage.String())
		return ActionResult{Message: msg}
	}

	payout := cropHealthProxy * f.cfg.Area * payoutPerUnit
	f.state.Funds += payout

	// Log before the cycle reset so the surviving entry carries the
	// harvest day rather than day 0.
	msg := fmt.Sprintf("Harvested! Profit: ₹%s", humanize.Commaf(payout))
	f.log = nil
	f.prependLog(string(ActionHarvest), msg)

	f.state.Stage = StageSoilPrep
	f.state.GrowthProgress = 0
	f.state.Day = 0
	f.state.WaterLevel = 60
	f.state.SoilHealth = 70
	f.state.PestRisk = 10
	f.refreshDerived()
	f.setEffect(EffectHarvesting)
	f.logger.Info("harvest complete", "payout", payout, "funds", f.state.Funds)
	return ActionResult{Applied: true, Message: msg, Payout: payout}
}
