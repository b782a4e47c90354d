package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fuel-keeper/internal/app"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of the request body.
const hashHeader = "HashSHA256"

// checkHash verifies the HashSHA256 header of entry requests against the
// request body. Requests without the header pass, as does everything when no
// hash key is configured.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hashFromRequest := strings.ToLower(strings.TrimSpace(r.Header.Get(hashHeader)))
		if h.hashKey == "" || hashFromRequest == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.checkHash").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgFailedToReadBody, err.Error())
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if !hmac.Equal([]byte(hashedBody), []byte(hashFromRequest)) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", hashFromRequest).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			utils.WriteError(w, http.StatusBadRequest, app.MsgIntegrityCheckFailed, "HashSHA256 header does not match request body")
			return
		}

		log.Debug().Str("func", "*Handler.checkHash").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
