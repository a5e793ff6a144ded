/*
Package summary computes aggregate statistics over a BEDPE file.

Each valid record is classified as intra-chromosomal (both ends on the same
chromosome) or inter-chromosomal.  Intra-chromosomal records are further
classified by strand orientation:

  strand1 == strand2     inversion
  strand1 +, strand2 -   deletion
  strand1 -, strand2 +   insertion

and contribute their distance |start2 - start1| to the mean, the exact median
and a fixed-bin-count histogram.  Strands compare as raw tokens, so "./." and
a line without strand columns are inversions, while "./+" or any other
unmatched pair is counted but not assigned a category.

All arithmetic is integer: the mean and median truncate, and the histogram bin
width is (max - min) / nbins, also truncated.  Computing the exact median
requires keeping every distance in memory, so memory use grows linearly with
the number of intra-chromosomal records.  Everything else is streamed.
*/
package summary
