package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"gymcloud/internal/errors"
	"gymcloud/internal/model"
	"gymcloud/internal/service"
)

// SeedResult counts what happened to each seeded record.
type SeedResult struct {
	Created  int
	Existing int
	Rejected int
}

// loadMembers reads a JSON array of create requests from a local file or an
// http(s) URL.
func loadMembers(source string) ([]model.CreateMemberRequest, error) {
	var body []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var requests []model.CreateMemberRequest
	if err := json.Unmarshal(body, &requests); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return requests, nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// seedMembers pushes every request through the normal create path. Records
// that already exist or fail validation are counted and skipped; a store
// fault aborts the run.
func seedMembers(ctx context.Context, svc service.MemberService, log logrus.FieldLogger, requests []model.CreateMemberRequest) (SeedResult, error) {
	var result SeedResult
	for i := range requests {
		req := &requests[i]
		_, err := svc.CreateMember(ctx, req)
		switch {
		case err == nil:
			result.Created++
		case stderrors.Is(err, errors.ErrMemberExists):
			result.Existing++
		case errors.MapErrorToHTTP(err).IsClientError():
			log.WithFields(logrus.Fields{"email": req.Email, "reason": err.Error()}).Warn("skipping invalid member")
			result.Rejected++
		default:
			return result, fmt.Errorf("seed member %q: %w", req.Email, err)
		}
	}
	return result, nil
}
