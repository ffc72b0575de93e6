package repository

import (
	allocationLogRepo "templeseva/database/repository/allocationlog"
	bookingRepo "templeseva/database/repository/booking"
	catalogRepo "templeseva/database/repository/catalog"
	mappingRepo "templeseva/database/repository/mapping"
	providerRepo "templeseva/database/repository/provider"
)

// Re-export the repository interfaces used by the services.
type ProviderRepository = providerRepo.ProviderRepository

type RosterSnapshot = providerRepo.RosterSnapshot

type BookingRepository = bookingRepo.BookingRepository

type MappingRepository = mappingRepo.MappingRepository

type CatalogRepository = catalogRepo.CatalogRepository

type AllocationLogRepository = allocationLogRepo.AllocationLogRepository
