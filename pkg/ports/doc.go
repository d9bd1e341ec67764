/*
Package ports defines the driven ports (interfaces) for the aegraph engine.

These interfaces decouple the core logic from external implementations, so the
engine can read exercises from a directory of markdown files, from YAML held in
memory, or from anything else a host provides.

# Key Interfaces

  - ExerciseLoader: Responsible for loading Exercise definitions (e.g., from Loam or Memory).
*/
package ports
