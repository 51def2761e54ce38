package core

import (
	"time"
)

const day = 24 * time.Hour

// SeedEvents returns the events that build the demonstration catalog relative to now:
// five books, one active borrowing of book 1 and one returned borrowing of book 3.
func SeedEvents(now time.Time) DomainEvents {
	return DomainEvents{
		BuildBookAdded(1, "Laskar Pelangi", "Andrea Hirata", "978-979-22-2941-4", "Novel", now),
		BuildBookAdded(2, "Bumi Manusia", "Pramoedya Ananta Toer", "978-979-22-3813-3", "Novel", now),
		BuildBookAdded(3, "Python Programming", "John Smith", "978-1-59327-928-8", "Technology", now),
		BuildBookAdded(4, "Clean Code", "Robert C. Martin", "978-0-13-235088-4", "Technology", now),
		BuildBookAdded(5, "Design Patterns", "Gang of Four", "978-0-20163-361-0", "Technology", now),
		BuildBookBorrowed(1, 1, "Ahmad Rizki", now.Add(9*day), now.Add(-5*day)),
		BuildBookBorrowed(2, 3, "Siti Nurhaliza", now.Add(-6*day), now.Add(-20*day)),
		BuildBookReturned(2, 3, now.Add(-3*day)),
	}
}
