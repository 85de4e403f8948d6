package router

import (
	"fmt"
	"net/http"

	"github.com/myhien-tailor/engagement/internal/middlewares"
	"github.com/myhien-tailor/engagement/internal/models"
)

func CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	values := middlewares.GetParsedJSONData[map[string]string](w, r)

	if len(values) == 0 {
		http.Error(w, "Measurement values are empty", http.StatusUnprocessableEntity)
		return
	}

	measurementService := middlewares.GetServiceFromContext[models.MeasurementService](w, r, middlewares.MeasurementServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	record, err := (*measurementService).Append(r.Context(), user.Login, values, "")
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during saving measurements: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	middlewares.EncodeJSONResponse(w, record)
}

func GetMeasurements(w http.ResponseWriter, r *http.Request) {
	measurementService := middlewares.GetServiceFromContext[models.MeasurementService](w, r, middlewares.MeasurementServiceKey)

	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	snapshots, err := (*measurementService).List(r.Context(), user.Login)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during getting measurements: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	if len(snapshots) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middlewares.EncodeJSONResponse(w, snapshots)
}
