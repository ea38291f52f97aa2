package resval

// PackageVersion is the released version of resval.
const PackageVersion = "1.1.2"
