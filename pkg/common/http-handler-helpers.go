package common

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

// JsonHandler encodes the value returned by fn. A *types.NotFoundError is
// written as 404, any other error as 500.
func JsonHandler(fn func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, types.ErrNotFound) {
				status = http.StatusNotFound
			} else {
				logrus.WithError(err).WithField("path", r.URL.Path).Error("error handling request")
			}
			WriteJson(w, status, errorResponse{Error: err.Error()})
			return
		}
		WriteJson(w, http.StatusOK, data)
	}
}

func WriteJson(w http.ResponseWriter, status int, data any) {
	body, err := sonic.ConfigStd.Marshal(data)
	if err != nil {
		logrus.WithError(err).Error("could not encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	WriteJsonBytes(w, status, body)
}

func WriteJsonBytes(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logrus.WithError(err).Debug("could not write response")
	}
}
