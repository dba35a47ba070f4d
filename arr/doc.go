// Package arr provides standalone helpers for reordering and de-duplicating
// plain Go slices.
//
// All helpers are generic and operate on []T directly, with no wrapper type:
//
//	arr.Move([]int{1, 2, 3}, 2, 0)   // → [3 1 2] (in place)
//	arr.Unique([]int{1, 2, 2})       // → [1 2]
//	arr.UniqueBy(users, func(u User) int { return u.ID })
//
// [Move] is the only helper that mutates its input; every other function
// returns a new slice.
package arr
