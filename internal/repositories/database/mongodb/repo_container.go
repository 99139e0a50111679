package mongodb

import (
	portsrepo "github.com/SscSPs/diary_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(source CollectionSource) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo: newMongoEntryRepository(source),
	}
}
