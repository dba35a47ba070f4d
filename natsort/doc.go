// Package natsort orders strings "naturally": runs of digits compare by
// numeric value, everything else compares with locale-aware collation.
//
//	names := []string{"img12.png", "img10.png", "img2.png", "img1.png"}
//	natsort.Sort(names) // → [img1.png img2.png img10.png img12.png]
//
// One special case is kept for recipe-style lists: a string starting with
// the literal prefix "1/2 " sorts before every string that does not.
package natsort
