package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/2ntng/library-management/library/internal/model"
)

// Population resolves foreign ids into full entities on the read side only.
// Lookups are batched and indexed by id, one query per referenced table, and
// a dangling reference leaves the field empty instead of failing the response.

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *Service) populateAuthors(ctx context.Context, authors []model.Author) error {
	if len(authors) == 0 {
		return nil
	}
	ids := make([]string, 0, len(authors))
	for i := range authors {
		ids = append(ids, authors[i].ID)
	}

	books, err := s.repo.BooksByAuthorIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return err
	}
	byAuthor := make(map[string][]model.Book, len(authors))
	for _, book := range books {
		byAuthor[book.AuthorID] = append(byAuthor[book.AuthorID], book)
	}
	for i := range authors {
		authors[i].Books = byAuthor[authors[i].ID]
	}
	return nil
}

func (s *Service) populateBooks(ctx context.Context, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}
	bookIDs := make([]string, 0, len(books))
	authorIDs := make([]string, 0, len(books))
	for i := range books {
		bookIDs = append(bookIDs, books[i].ID)
		authorIDs = append(authorIDs, books[i].AuthorID)
	}

	var (
		authors []model.Author
		loans   []model.BorrowedBook
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		authors, err = s.repo.AuthorsByIDs(ctx, uniqueIDs(authorIDs))
		return err
	})
	gg.Go(func() error {
		var err error
		loans, err = s.repo.LoansByBookIDs(ctx, uniqueIDs(bookIDs))
		return err
	})
	if err := gg.Wait(); err != nil {
		return err
	}

	authorByID := make(map[string]model.Author, len(authors))
	for _, author := range authors {
		authorByID[author.ID] = author
	}
	loansByBook := make(map[string][]model.BorrowedBook, len(books))
	for _, loan := range loans {
		loansByBook[loan.BookID] = append(loansByBook[loan.BookID], loan)
	}

	for i := range books {
		if author, ok := authorByID[books[i].AuthorID]; ok {
			author := author
			books[i].Author = &author
		}
		books[i].BorrowedBooks = loansByBook[books[i].ID]
	}
	return nil
}

func (s *Service) populateMembers(ctx context.Context, members []model.Member) error {
	if len(members) == 0 {
		return nil
	}
	ids := make([]string, 0, len(members))
	for i := range members {
		ids = append(ids, members[i].ID)
	}

	loans, err := s.repo.LoansByMemberIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return err
	}
	byMember := make(map[string][]model.BorrowedBook, len(members))
	for _, loan := range loans {
		byMember[loan.MemberID] = append(byMember[loan.MemberID], loan)
	}
	for i := range members {
		members[i].BorrowedBooks = byMember[members[i].ID]
	}
	return nil
}

func (s *Service) populateLoans(ctx context.Context, loans []model.BorrowedBook) error {
	if len(loans) == 0 {
		return nil
	}
	bookIDs := make([]string, 0, len(loans))
	memberIDs := make([]string, 0, len(loans))
	for i := range loans {
		bookIDs = append(bookIDs, loans[i].BookID)
		memberIDs = append(memberIDs, loans[i].MemberID)
	}

	var (
		books   []model.Book
		members []model.Member
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		books, err = s.repo.BooksByIDs(ctx, uniqueIDs(bookIDs))
		return err
	})
	gg.Go(func() error {
		var err error
		members, err = s.repo.MembersByIDs(ctx, uniqueIDs(memberIDs))
		return err
	})
	if err := gg.Wait(); err != nil {
		return err
	}

	bookByID := make(map[string]model.Book, len(books))
	for _, book := range books {
		bookByID[book.ID] = book
	}
	memberByID := make(map[string]model.Member, len(members))
	for _, member := range members {
		memberByID[member.ID] = member
	}

	for i := range loans {
		if book, ok := bookByID[loans[i].BookID]; ok {
			book := book
			loans[i].Book = &book
		}
		if member, ok := memberByID[loans[i].MemberID]; ok {
			member := member
			loans[i].Member = &member
		}
	}
	return nil
}
