/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model.
* It has a primary key, usually allocated from a sequence.
* It may possess one or more secondary indexes (1:1 or 1:N)
* Easy queries for one and iteration.

Models are protobuf messages that know how to validate themselves. The
ModelBucket is the only entry point applications should use, Bucket and
the index implementation are the building blocks below it.
*/
package orm
