package domain

import (
	interfaces "citylaw/internal/domain/interfaces"
	types "citylaw/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Slug              = types.Slug
	ClusterID         = types.ClusterID
	PracticeKey       = types.PracticeKey
	Court             = types.Court
	DMV               = types.DMV
	Geography         = types.Geography
	ClusterRef        = types.ClusterRef
	CityPack          = types.CityPack
	ClusterCity       = types.ClusterCity
	Pricing           = types.Pricing
	ClusterMeta       = types.ClusterMeta
	ClusterFile       = types.ClusterFile
	SponsorshipStatus = types.SponsorshipStatus
	Sponsorship       = types.Sponsorship
	SponsorshipView   = types.SponsorshipView
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CityStore    = interfaces.CityStore
	ClusterStore = interfaces.ClusterStore
	OutputStore  = interfaces.OutputStore
)

const (
	PracticeDUI = types.PracticeDUI

	StatusAvailable = types.StatusAvailable
	StatusReserved  = types.StatusReserved
	StatusSold      = types.StatusSold
)
