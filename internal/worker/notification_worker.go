package worker

import (
	"github.com/spec-kit/job-board/internal/service"
)

// StartNotificationWorker registers notification handlers. Delivery is
// synchronous with the request that published the event.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
