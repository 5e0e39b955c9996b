package conf

// DefaultTableSize - Number of buckets used when no validated row count is known in advance
const DefaultTableSize int = 179

// EmptyKey - Reserved sentinel key marking an unoccupied bucket head
const EmptyKey int = -1

// NoOverflow - Chain terminator for overflow links in the arena
const NoOverflow int = -1

// FieldNumber - Field position holding the course number
const FieldNumber int = 0

// FieldTitle - Field position holding the course title
const FieldTitle int = 1

// MinFieldCount - Minimum number of non-empty fields a row must carry to be well-formed
const MinFieldCount int = 2

// DefaultInputPath - Course file used when no path is given on the command line or in configuration
const DefaultInputPath string = "./ABCU_Advising_Program_Input.csv"
