// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// PlaceCandidate is a resolved city suggestion returned by the place
// resolver. The ranking score used internally is never serialized.
type PlaceCandidate struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Country string `json:"country"`
}
