/*
Package cpus derives DPDK dataplane CPU assignments from the textual output of
system commands.

  - [ResolveNUMACores] translates NUMA-relative core references “node.index”
    into CPU numbers, using the CSV topology printed by “lscpu -p=NODE,CPU”.
  - [Coremask] turns a list of CPU numbers into a hexadecimal coremask.
  - [ExpandIsolated] expands an “isolcpus=” style CPU list, such as
    “1,3-5,8”, into its individual CPU numbers.

Internally, [List] stores CPU numbers as ranges, such as 1-4, 8-15, while
[Set] stores CPU numbers as bits, such as (hex) ff1e. [List.Set] converts a
List into its corresponding Set. In the opposite direction, [Set.List]
converts a Set into its equivalent List.

All functions are pure: their results depend only on their arguments.
*/
package cpus
