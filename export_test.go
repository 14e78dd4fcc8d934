package countsquares

var BruteForceCount = bruteForceCount
