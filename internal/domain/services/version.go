// Package services contains domain logic that does not touch the outside world.
package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ochairo/saclient/internal/domain/entities"
)

// NeedsUpdate compares a local and a remote dot-separated version.
//
// Only the first min(len(local), len(remote)) components are compared, and an
// update is needed as soon as any compared local component is lower than the
// remote one. Empty versions mean "unknown" and never force an update.
// A non-numeric component yields entities.ErrUnparsableVersion.
func NeedsUpdate(local, remote string) (bool, error) {
	local = strings.TrimSpace(local)
	remote = strings.TrimSpace(remote)
	if local == "" || remote == "" {
		return false, nil
	}

	localParts := strings.Split(local, ".")
	remoteParts := strings.Split(remote, ".")

	for i := 0; i < len(localParts) && i < len(remoteParts); i++ {
		l, err := parseComponent(localParts[i])
		if err != nil {
			return false, fmt.Errorf("local version %q: %w", local, err)
		}
		r, err := parseComponent(remoteParts[i])
		if err != nil {
			return false, fmt.Errorf("remote version %q: %w", remote, err)
		}
		if l < r {
			return true, nil
		}
	}

	return false, nil
}

func parseComponent(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: component %q", entities.ErrUnparsableVersion, s)
	}
	return n, nil
}
