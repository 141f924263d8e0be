// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrOrganizationNotFound is returned by update operations referencing an
// id that does not exist in the catalog. Handlers map it to a 404 response;
// no side effects occur.
var ErrOrganizationNotFound = errors.New("organization not found")
