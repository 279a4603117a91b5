package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError logs an unexpected error with the operation it surfaced
// from and answers with a generic 500 envelope. Callers map their domain
// errors before falling through to here.
func HandleError(err error, operation string, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error("Unhandled error",
		gecho.Field("operation", operation),
		gecho.Field("error", err),
		gecho.WithCallerSkip(3),
	)

	return gecho.InternalServerError(w,
		gecho.WithMessage("Something went wrong. Please try again"),
		gecho.Send(),
	).Send()
}
