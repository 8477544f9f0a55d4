package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/droid-court/game"
	"github.com/lixenwraith/droid-court/rig"
)

// lowEnergyThreshold switches the energy box to the warning style
const lowEnergyThreshold = 30

// HUDRenderer draws the status rows, help line and phase banners
type HUDRenderer struct{}

// NewHUDRenderer creates the HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx RenderContext, buf *Buffer) {
	snap := ctx.Snap
	if snap == nil {
		return
	}
	st := snap.State

	energyStyle := StyleEnergy
	if st.Energy <= lowEnergyThreshold {
		energyStyle = StyleEnergyLow
	}

	x := buf.SetString(0, 0, fmt.Sprintf(" ENERGY %d ", st.Energy), energyStyle)
	x = buf.SetString(x+1, 0, fmt.Sprintf(" SCORE %d ", st.Score), StyleScore)
	x = buf.SetString(x+1, 0, fmt.Sprintf("best %d", max(ctx.Best, st.Score)), StyleHelp)
	x = buf.SetString(x+2, 0, fmt.Sprintf("spawned %d/%d", snap.Counts.Total(), snap.Target), StyleHelp)
	x = buf.SetString(x+2, 0, fmt.Sprintf("difficulty %.0f", snap.Difficulty), StyleHelp)
	buf.SetString(x+2, 0, st.Camera.String(), StyleHelp)

	buf.SetString(0, 1, FormatPose(snap.DOF(rig.HeadRotation), snap.DOF(rig.BodyTilt), snap.DOF(rig.ArmScale))+
		fmt.Sprintf("  heading %3.0f°   t %.0fs", degrees(snap.Yaw), snap.Elapsed.Seconds()), StyleHelp)

	if ctx.Help != "" {
		buf.SetString(0, ctx.ScreenHeight-1, ctx.Help, StyleHelp)
	}

	mid := ctx.ViewY + ctx.ViewHeight/2
	switch st.Phase {
	case game.Paused:
		buf.SetCentered(mid, " PAUSED ", StylePaused)
	case game.Ended:
		buf.SetCentered(mid, " GAME OVER ", StyleEnded)
		buf.SetCentered(mid+1, fmt.Sprintf(" %s, score %d ", st.Reason, st.Score), StyleEnded)
	}
}

// FormatPose renders the degrees of freedom as one status line
func FormatPose(head, tilt, arms rig.DOF) string {
	return fmt.Sprintf("head %+4.0f°  tilt %+4.0f°  arms %.2f", head.Value, tilt.Value, arms.Value)
}

// degrees converts a radian yaw into a compass-style bearing in [0, 360)
func degrees(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}
