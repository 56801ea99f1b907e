package service

import "kisanmitra/internal/model"

// Broadcaster pushes live alert events to connected dashboards (avoids an
// import cycle with the ws package).
type Broadcaster interface {
	BroadcastAlert(alert *model.Alert, farmer *model.Farmer)
}
