package rider

import (
	"strings"

	"swiftdrop/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidContact(contact string) bool {
	return strings.TrimSpace(contact) != ""
}

func isValidWarehouse(code string) bool {
	return strings.TrimSpace(code) != ""
}

// isValidApprovalStatus: админ может одобрить, отклонить или вернуть
// заявку в ожидание. rider_assigned выставляется только назначением.
func isValidApprovalStatus(status entities.RiderStatusType) bool {
	switch status {
	case entities.RiderActive, entities.RiderRejected, entities.RiderPending:
		return true
	default:
		return false
	}
}
