package forms

import "strings"

type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
)

const defaultDurationMS = 5000

// Notification is a timed banner reporting the outcome of a submission.
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
	DurationMS  int
}

func ConsultationSent() Notification {
	return Notification{
		Kind:        KindSuccess,
		Title:       "Consultation Request Sent! 📋",
		Description: "Our education experts will contact you within 24 hours to schedule your free consultation.",
		DurationMS:  defaultDurationMS,
	}
}

func ConsultationFailed() Notification {
	return Notification{
		Kind:        KindError,
		Title:       "Request Failed",
		Description: "There was an error sending your consultation request. Please try again.",
		DurationMS:  defaultDurationMS,
	}
}

func EnrollmentSucceeded() Notification {
	return Notification{
		Kind:        KindSuccess,
		Title:       "Enrollment Successful! 🎉",
		Description: "Welcome to TecaiKids! We'll contact you soon with next steps.",
		DurationMS:  defaultDurationMS,
	}
}

func EnrollmentFailed() Notification {
	return Notification{
		Kind:        KindError,
		Title:       "Enrollment Failed",
		Description: "There was an error processing your enrollment. Please try again.",
		DurationMS:  defaultDurationMS,
	}
}

// Busy reports a submission refused because another is still in flight.
func Busy(action string) Notification {
	return Notification{
		Kind:        KindError,
		Title:       "Please wait",
		Description: "Your " + action + " is still being processed.",
		DurationMS:  defaultDurationMS,
	}
}

// Incomplete reports a submission refused because the named fields are empty.
func Incomplete(action string, missing []string) Notification {
	desc := "Please fill in every required field before sending your " + action + "."
	if len(missing) > 0 {
		desc += " Missing: " + strings.ReplaceAll(strings.Join(missing, ", "), "_", " ") + "."
	}
	return Notification{
		Kind:        KindError,
		Title:       "Missing information",
		Description: desc,
		DurationMS:  defaultDurationMS,
	}
}
